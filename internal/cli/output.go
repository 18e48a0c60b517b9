package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wordrush/wordrush/internal/language"
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
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Round:
		o.printRound(v)
	case Submission:
		o.printSubmission(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Round response type
type Round struct {
	ID         string         `json:"id"`
	Language   string         `json:"language"`
	Rows       int            `json:"rows"`
	Cols       int            `json:"cols"`
	Grid       []string       `json:"grid"`
	State      string         `json:"state"`
	Players    []string       `json:"players"`
	Scores     map[string]int `json:"scores"`
	FoundWords []string       `json:"found_words,omitempty"`
}

// Position response type
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WordScore response type
type WordScore struct {
	Base       int `json:"base"`
	ComboBonus int `json:"combo_bonus"`
	Total      int `json:"total"`
}

// Submission response type
type Submission struct {
	Accepted   bool       `json:"accepted"`
	Reason     string     `json:"reason,omitempty"`
	Word       string     `json:"word"`
	Language   string     `json:"language"`
	Path       []Position `json:"path,omitempty"`
	Score      *WordScore `json:"score,omitempty"`
	ComboLevel int        `json:"combo_level"`
	TotalScore int        `json:"total_score"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printRound(r Round) {
	fmt.Printf("Round: %s\n", r.ID)
	fmt.Printf("Language: %s\n", r.Language)
	fmt.Printf("State: %s\n", r.State)

	fmt.Println("\nBoard:")
	o.printGrid(r.Grid)

	if len(r.Scores) > 0 {
		fmt.Println("\nScores:")
		for _, pid := range r.Players {
			fmt.Printf("  %s: %d points\n", pid, r.Scores[pid])
		}
	}

	if len(r.FoundWords) > 0 {
		fmt.Println("\nYour words:")
		for _, w := range r.FoundWords {
			fmt.Printf("  %s\n", displayWord(w, r.Language))
		}
	}
}

// displayWord renders a canonical word in its display form, re-applying
// word-final variants (Hebrew final forms). The canonical form is shown
// unchanged when the language tag is unknown.
func displayWord(word, lang string) string {
	rendered, err := language.DenormalizeWord(word, language.Language(lang))
	if err != nil {
		return word
	}
	return rendered
}

func (o *Output) printGrid(rows []string) {
	if len(rows) == 0 {
		return
	}

	cols := len([]rune(rows[0]))

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < cols; col++ {
		fmt.Printf(" %d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < cols; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for rowIdx, row := range rows {
		fmt.Printf(" %d |", rowIdx)
		for _, cell := range []rune(row) {
			fmt.Printf(" %s ", string(cell))
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < cols; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

func (o *Output) printSubmission(sub Submission) {
	if !sub.Accepted {
		fmt.Printf("Rejected: %s (%s)\n", displayWord(sub.Word, sub.Language), sub.Reason)
		fmt.Printf("Combo reset to level %d\n", sub.ComboLevel)
		return
	}

	fmt.Printf("Accepted: %s\n", displayWord(sub.Word, sub.Language))
	if sub.Score != nil {
		if sub.Score.ComboBonus > 0 {
			fmt.Printf("Points: %d (%d base + %d combo)\n", sub.Score.Total, sub.Score.Base, sub.Score.ComboBonus)
		} else {
			fmt.Printf("Points: %d\n", sub.Score.Total)
		}
	}
	fmt.Printf("Combo level: %d\n", sub.ComboLevel)
	fmt.Printf("Round total: %d\n", sub.TotalScore)

	if len(sub.Path) > 0 {
		fmt.Print("Path:")
		for _, pos := range sub.Path {
			fmt.Printf(" (%d,%d)", pos.Row, pos.Col)
		}
		fmt.Println()
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
