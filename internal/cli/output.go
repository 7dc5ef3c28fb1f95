package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Agent:
		o.printAgent(v)
	case AuthResult:
		o.printAuthResult(v)
	case Session:
		o.printSession(v)
	case []SessionListing:
		o.printSessionListings(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case []SavedPlayer:
		o.printSavedPlayers(v)
	case SavedPlayer:
		o.printSavedPlayer(v)
	case []Match:
		o.printMatches(v)
	case GenerateResult:
		o.printMatches(v.Created)
	case CompleteResult:
		o.printCompleteResult(v)
	case ImportResult:
		fmt.Printf("Imported: %d\n", v.Imported)
	case Booking:
		o.printBooking(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Agent response type (matches API)
type Agent struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResult combines agent and token
type AuthResult struct {
	Agent        Agent  `json:"agent"`
	SessionToken string `json:"session_token"`
}

// Session response type
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       string    `json:"date,omitempty"`
	Location   string    `json:"location,omitempty"`
	CourtCount int       `json:"court_count"`
	CourtNames []string  `json:"court_names,omitempty"`
	Slug       string    `json:"slug"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionListing response type
type SessionListing struct {
	Session
	PlayerCount int `json:"player_count"`
}

// Player response type
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	GamesPlayed int    `json:"games_played"`
	IsWaiting   bool   `json:"is_waiting"`
}

// SavedPlayer response type
type SavedPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Match response type
type Match struct {
	ID        string    `json:"id"`
	CourtID   int       `json:"court_id"`
	CourtName string    `json:"court_name"`
	Team1     [2]string `json:"team1"`
	Team2     [2]string `json:"team2"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateResult response type
type GenerateResult struct {
	Created []Match `json:"created"`
}

// CompleteResult response type
type CompleteResult struct {
	UpdatedPlayers []Player `json:"updated_players"`
}

// ImportResult response type
type ImportResult struct {
	Imported int `json:"imported"`
}

// Booking response type
type Booking struct {
	Session Session  `json:"session"`
	Players []Player `json:"players"`
	Matches []Match  `json:"matches"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAgent(a Agent) {
	fmt.Printf("Agent: %s (%s)\n", a.Username, a.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printAgent(a.Agent)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s (%s)\n", s.Name, s.ID)
	if s.Date != "" {
		fmt.Printf("Date: %s\n", s.Date)
	}
	if s.Location != "" {
		fmt.Printf("Location: %s\n", s.Location)
	}
	fmt.Printf("Courts: %d\n", s.CourtCount)
	for i, name := range s.CourtNames {
		if name != "" {
			fmt.Printf("  Court %d: %s\n", i+1, name)
		}
	}
	fmt.Printf("Booking link: /api/v1/bookings/%s\n", s.Slug)
}

func (o *Output) printSessionListings(listings []SessionListing) {
	if len(listings) == 0 {
		fmt.Println("No sessions")
		return
	}
	for _, l := range listings {
		fmt.Printf("%s  %s  courts=%d  players=%d  slug=%s\n",
			l.ID, l.Name, l.CourtCount, l.PlayerCount, l.Slug)
	}
}

func (o *Output) printPlayer(p Player) {
	waiting := "sitting out"
	if p.IsWaiting {
		waiting = "waiting"
	}
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	if p.Category != "" {
		fmt.Printf("Category: %s\n", p.Category)
	}
	fmt.Printf("Games played: %d\n", p.GamesPlayed)
	fmt.Printf("Status: %s\n", waiting)
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	for _, p := range players {
		status := "out"
		if p.IsWaiting {
			status = "waiting"
		}
		fmt.Printf("%s  %-20s games=%d  %s\n", p.ID, p.Name, p.GamesPlayed, status)
	}
}

func (o *Output) printSavedPlayer(sp SavedPlayer) {
	fmt.Printf("Saved: %s (%s)\n", sp.Name, sp.ID)
}

func (o *Output) printSavedPlayers(saved []SavedPlayer) {
	if len(saved) == 0 {
		fmt.Println("Pool is empty")
		return
	}
	for _, sp := range saved {
		cat := sp.Category
		if cat == "" {
			cat = "-"
		}
		fmt.Printf("%-20s %s\n", sp.Name, cat)
	}
}

func (o *Output) printMatches(matches []Match) {
	if len(matches) == 0 {
		fmt.Println("No active matches")
		return
	}
	for _, m := range matches {
		fmt.Printf("%s  %s: %s/%s vs %s/%s\n",
			m.ID, m.CourtName,
			m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1])
	}
}

func (o *Output) printCompleteResult(c CompleteResult) {
	fmt.Println("Match completed")
	for _, p := range c.UpdatedPlayers {
		fmt.Printf("  %s: games=%d\n", p.Name, p.GamesPlayed)
	}
}

func (o *Output) printBooking(b Booking) {
	o.printSession(b.Session)
	fmt.Printf("\nPlayers (%d):\n", len(b.Players))
	for _, p := range b.Players {
		fmt.Printf("  %-20s games=%d\n", p.Name, p.GamesPlayed)
	}
	if len(b.Matches) > 0 {
		fmt.Println("\nOn court:")
		o.printMatches(b.Matches)
	}
}
