package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	matchesGenerated int
	matchesCompleted int
	generateRejected map[string]int
	playersAdded     int
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance
func NewMock() *Mock {
	return &Mock{
		generateRejected: make(map[string]int),
	}
}

func (m *Mock) IncMatchesGenerated(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesGenerated += count
}

func (m *Mock) IncMatchesCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesCompleted++
}

func (m *Mock) IncGenerateRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generateRejected[reason]++
}

func (m *Mock) IncPlayersAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersAdded++
}

// MatchesGenerated returns the recorded generated-match count
func (m *Mock) MatchesGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesGenerated
}

// MatchesCompleted returns the recorded completed-match count
func (m *Mock) MatchesCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesCompleted
}

// GenerateRejected returns how often generation was rejected for a reason
func (m *Mock) GenerateRejected(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generateRejected[reason]
}

// PlayersAdded returns the recorded added-player count
func (m *Mock) PlayersAdded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersAdded
}
