package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics defines the interface for collecting application metrics.
// This decouples the services from the Prometheus implementation.
type Metrics interface {
	IncMatchesGenerated(count int)
	IncMatchesCompleted()
	IncGenerateRejected(reason string)
	IncPlayersAdded()
}

var _ Metrics = (*Service)(nil)

// Service is the Prometheus-backed Metrics implementation
type Service struct {
	matchesGenerated prometheus.Counter
	matchesCompleted prometheus.Counter
	generateRejected *prometheus.CounterVec
	playersAdded     prometheus.Counter
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		matchesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "badminton_matches_generated_total",
			Help: "The total number of matches created by the rotation engine.",
		}),
		matchesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "badminton_matches_completed_total",
			Help: "The total number of matches completed.",
		}),
		generateRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "badminton_generate_rejected_total",
			Help: "The total number of generate calls rejected by a precondition.",
		}, []string{"reason"}),
		playersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "badminton_players_added_total",
			Help: "The total number of players added to session rosters.",
		}),
	}

	reg.MustRegister(
		s.matchesGenerated,
		s.matchesCompleted,
		s.generateRejected,
		s.playersAdded,
	)

	return s
}

// NewHandler returns an http.Handler serving the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

func (s *Service) IncMatchesGenerated(count int) {
	s.matchesGenerated.Add(float64(count))
}

func (s *Service) IncMatchesCompleted() {
	s.matchesCompleted.Inc()
}

func (s *Service) IncGenerateRejected(reason string) {
	s.generateRejected.WithLabelValues(reason).Inc()
}

func (s *Service) IncPlayersAdded() {
	s.playersAdded.Inc()
}
