package rotation

import (
	"sort"

	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/random"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
)

// PlayersPerMatch is the number of players a doubles match consumes
const PlayersPerMatch = 4

// Assignment is one planned match: an idle court and the four players that
// fill it, already split into teams
type Assignment struct {
	CourtID int
	Team1   [2]model.PlayerID
	Team2   [2]model.PlayerID
}

// Service is the court assignment engine. It is pure planning: given the
// roster, the active matches and the court count, it decides which idle
// courts receive matches and who plays where. Fairness (games played)
// governs who plays; randomness governs only ties and team sides.
type Service struct {
	random random.Random
}

// New creates a new rotation service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// IdleCourts returns the courts in [1, courtCount] with no active match,
// in ascending order
func (s *Service) IdleCourts(active []*model.Match, courtCount int) []int {
	occupied := model.OccupiedCourts(active)
	idle := make([]int, 0, courtCount)
	for court := 1; court <= courtCount; court++ {
		if !occupied[court] {
			idle = append(idle, court)
		}
	}
	return idle
}

// Eligible returns the players available for the next match: not referenced
// by any active match and not sitting out. The waiting flag is authoritative;
// both signals are recomputed fresh on every invocation.
func (s *Service) Eligible(players []*model.Player, active []*model.Match) []*model.Player {
	playing := model.PlayingPlayers(active)
	eligible := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if !playing[p.ID] && p.IsWaiting {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// Plan computes the full set of new matches for one generate invocation.
// It makes no changes itself; the caller persists the assignments.
//
// Fails with model.ErrNoIdleCourts when every court is occupied, or with
// model.InsufficientPlayersError when fewer than four players are eligible.
// Idle courts beyond the available quartets simply stay empty.
func (s *Service) Plan(players []*model.Player, active []*model.Match, courtCount int) ([]Assignment, error) {
	idle := s.IdleCourts(active, courtCount)
	if len(idle) == 0 {
		return nil, model.ErrNoIdleCourts
	}

	eligible := s.Eligible(players, active)
	if len(eligible) < PlayersPerMatch {
		return nil, &model.InsufficientPlayersError{Eligible: len(eligible)}
	}

	queue := s.fairnessOrder(eligible)

	assignments := make([]Assignment, 0, len(idle))
	next := 0
	for _, court := range idle {
		if next+PlayersPerMatch > len(queue) {
			break // Remaining courts stay empty this round
		}

		quartet := make([]model.PlayerID, PlayersPerMatch)
		for i := 0; i < PlayersPerMatch; i++ {
			quartet[i] = queue[next].ID
			next++
		}

		// Fairness decided who plays; the shuffle decides the sides
		s.random.Shuffle(len(quartet), func(i, j int) {
			quartet[i], quartet[j] = quartet[j], quartet[i]
		})

		assignments = append(assignments, Assignment{
			CourtID: court,
			Team1:   [2]model.PlayerID{quartet[0], quartet[1]},
			Team2:   [2]model.PlayerID{quartet[2], quartet[3]},
		})
	}

	return assignments, nil
}

// fairnessOrder sorts the eligible players ascending by games played.
// Ties break randomly rather than by any stable key, so players with equal
// counts don't starve under a deterministic ordering.
func (s *Service) fairnessOrder(eligible []*model.Player) []*model.Player {
	queue := make([]*model.Player, len(eligible))
	copy(queue, eligible)

	tiebreak := make(map[model.PlayerID]int, len(queue))
	for _, p := range queue {
		tiebreak[p.ID] = s.random.Intn(1 << 30)
	}

	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].GamesPlayed != queue[j].GamesPlayed {
			return queue[i].GamesPlayed < queue[j].GamesPlayed
		}
		return tiebreak[queue[i].ID] < tiebreak[queue[j].ID]
	})

	return queue
}
