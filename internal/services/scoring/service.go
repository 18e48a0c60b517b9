package scoring

import (
	"time"

	"github.com/wordrush/wordrush/internal/dependencies/clock"
	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
)

// Combo tuning. The acceptance window grows with the level so a hot
// streak gets slightly more breathing room, up to a cap. The bonus
// formula rewards long words far more than short ones so the combo
// cannot be farmed with rapid two-letter words.
const (
	comboLevelFloor = 2               // no bonus at or below this level
	comboLevelCap   = 8               // levels beyond floor+cap add nothing
	comboBaseWindow = 3 * time.Second // window at level 0
	comboWindowStep = 500 * time.Millisecond
	comboWindowCap  = 6 * time.Second
)

// lengthFactor is the step function scaling the combo bonus by word
// length (in graphemes)
func lengthFactor(graphemes int) float64 {
	switch {
	case graphemes <= 3:
		return 0.1
	case graphemes == 4:
		return 0.3
	case graphemes == 5:
		return 0.7
	case graphemes == 6:
		return 1.0
	default:
		return 1.5
	}
}

// Score computes the point value of a validated word at the given combo
// level. Deterministic and side-effect free.
func Score(word string, comboLevel int, lang language.Language) (model.WordScore, error) {
	graphemes, err := language.NormalizeWord(word, lang)
	if err != nil {
		return model.WordScore{}, err
	}

	base := len(graphemes) - 1
	if base < 1 {
		base = 1
	}

	bonus := 0
	if comboLevel > comboLevelFloor {
		levels := comboLevel - comboLevelFloor
		if levels > comboLevelCap {
			levels = comboLevelCap
		}
		bonus = int(float64(levels) * lengthFactor(len(graphemes)))
	}

	return model.WordScore{
		Base:       base,
		ComboBonus: bonus,
		Total:      base + bonus,
	}, nil
}

// ComboWindow returns how long after the last acceptance a new
// acceptance still extends the streak at the given level
func ComboWindow(level int) time.Duration {
	window := comboBaseWindow + time.Duration(level)*comboWindowStep
	if window > comboWindowCap {
		window = comboWindowCap
	}
	return window
}

// AdvanceCombo is the pure combo transition on an accepted word. The
// first acceptance arms the streak at level 0; each subsequent
// auto-validated acceptance inside the level-scaled window raises the
// level by one, anything else drops it back to 0. The caller owns the
// state; a new value is always returned.
func AdvanceCombo(state model.ComboState, now time.Time, autoValidated bool) model.ComboState {
	if !autoValidated || !state.Started() || now.Sub(state.LastAcceptedAt) > ComboWindow(state.Level) {
		return model.ComboState{Level: 0, LastAcceptedAt: now}
	}
	return model.ComboState{Level: state.Level + 1, LastAcceptedAt: now}
}

// ComboExpired reports whether the streak's window has lapsed with no
// new acceptance, which decays the level to 0 independent of any
// explicit submission
func ComboExpired(state model.ComboState, now time.Time) bool {
	if !state.Started() {
		return false
	}
	return now.Sub(state.LastAcceptedAt) > ComboWindow(state.Level)
}

// ResetCombo returns the cleared combo state, used at round start and on
// any rejected, duplicate, or out-of-board submission
func ResetCombo() model.ComboState {
	return model.ComboState{}
}

// Service binds the pure scoring functions to the injected clock for use
// by the round layer
type Service struct {
	clock clock.Clock
}

// New creates a new scoring service
func New(clk clock.Clock) *Service {
	return &Service{clock: clk}
}

// ScoreSubmission advances the player's combo for an accepted word and
// scores the word at the resulting level. Combo state is decayed first
// if its window already lapsed.
func (s *Service) ScoreSubmission(word string, state model.ComboState, autoValidated bool, lang language.Language) (model.WordScore, model.ComboState, error) {
	now := s.clock.Now()
	if ComboExpired(state, now) {
		state = ResetCombo()
	}
	next := AdvanceCombo(state, now, autoValidated)

	score, err := Score(word, next.Level, lang)
	if err != nil {
		return model.WordScore{}, state, err
	}
	return score, next, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreSubmission(word string, state model.ComboState, autoValidated bool, lang language.Language) (model.WordScore, model.ComboState, error)
}

var _ ServiceInterface = (*Service)(nil)
