package board

import (
	"log/slog"
	"sort"

	"github.com/wordrush/wordrush/internal/dependencies/random"
	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
)

// Tuning constants for word embedding. These are empirical: density
// controls how many words a board of a given size should carry, the
// attempt budgets bound the randomized placement search per word.
const (
	embedDensity        = 5  // target one embedded word per ~5 cells
	embedFloor          = 4  // minimum embed target on boards of 16+ cells
	embedFloorSmall     = 2  // minimum embed target on smaller boards
	straightAttempts    = 80 // random start/direction trials per word
	windingAttempts     = 40 // random start trials for the DFS fallback
	smallBoardThreshold = 16
)

// Service generates grids with guaranteed-findable embedded words
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new board generation service
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger,
	}
}

// Generate builds a fully-populated rows x cols grid for the given
// language. Words from wordsToEmbed are placed (straight line first,
// winding DFS as fallback) so that each returned Placement's word is
// findable via a valid adjacency path; words that cannot be placed within
// the attempt budget are skipped silently. Remaining cells are filled
// with uniformly random graphemes from the language inventory.
//
// Generation is intentionally non-deterministic across calls with the
// same arguments; only the injected random source drives it.
func (s *Service) Generate(rows, cols int, lang language.Language, wordsToEmbed []string) (*model.Grid, []model.Placement, error) {
	provider, err := language.For(lang)
	if err != nil {
		return nil, nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, nil, model.ErrInvalidDimensions
	}

	grid := model.NewGrid(rows, cols)
	var placements []model.Placement

	if len(wordsToEmbed) > 0 {
		placements = s.embedWords(grid, provider, wordsToEmbed)
	}

	s.fillRemaining(grid, provider)

	s.logger.Debug("grid generated",
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.String("language", string(lang)),
		slog.Int("requested_words", len(wordsToEmbed)),
		slog.Int("embedded_words", len(placements)),
	)

	return grid, placements, nil
}

// embedWords places as many candidate words as the embed target asks
// for. Longer words claim cells first since they are harder to place
// into a partially-committed grid.
func (s *Service) embedWords(grid *model.Grid, provider language.Provider, words []string) []model.Placement {
	candidates := make([][]rune, 0, len(words))
	originals := make([]string, 0, len(words))
	for _, w := range words {
		graphemes := normalizeWith(provider, w)
		if len(graphemes) == 0 {
			continue
		}
		candidates = append(candidates, graphemes)
		originals = append(originals, string(graphemes))
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(candidates[order[a]]) > len(candidates[order[b]])
	})

	target := s.embedTarget(grid.Rows, grid.Cols, len(candidates))

	var placements []model.Placement
	for _, idx := range order {
		if len(placements) >= target {
			break
		}
		word := candidates[idx]
		if len(word) > grid.Rows*grid.Cols {
			continue // cannot fit even snaking through every cell
		}

		if path, ok := s.placeStraight(grid, word); ok {
			placements = append(placements, model.Placement{
				Word: originals[idx],
				Mode: model.PlacementStraight,
				Path: path,
			})
			continue
		}
		if path, ok := s.placeWinding(grid, word); ok {
			placements = append(placements, model.Placement{
				Word: originals[idx],
				Mode: model.PlacementWinding,
				Path: path,
			})
			continue
		}
		// Placement failure is silent and non-fatal; the word is skipped
		// and the grid stays valid.
		s.logger.Debug("word skipped, attempt budget exhausted",
			slog.String("word", originals[idx]),
		)
	}

	return placements
}

// embedTarget computes how many words to aim for on this board size
func (s *Service) embedTarget(rows, cols, available int) int {
	floor := embedFloor
	if rows*cols < smallBoardThreshold {
		floor = embedFloorSmall
	}
	target := rows * cols / embedDensity
	if target < floor {
		target = floor
	}
	if target > available {
		target = available
	}
	return target
}

// placeStraight tries bounded random (start, direction) pairs and
// commits the word along the first compatible straight line. A cell may
// be shared with a previously placed word only when both words need the
// identical grapheme there. Words longer than the longest straight line
// are rejected up front and left to the winding fallback.
func (s *Service) placeStraight(grid *model.Grid, word []rune) ([]model.Position, bool) {
	n := len(word)
	maxLine := grid.Rows
	if grid.Cols > maxLine {
		maxLine = grid.Cols
	}
	if n > maxLine {
		return nil, false
	}

	for attempt := 0; attempt < straightAttempts; attempt++ {
		start := model.Position{
			Row: s.random.Intn(grid.Rows),
			Col: s.random.Intn(grid.Cols),
		}
		dir := model.Directions[s.random.Intn(len(model.Directions))]

		end := model.Position{
			Row: start.Row + dir.Row*(n-1),
			Col: start.Col + dir.Col*(n-1),
		}
		if !grid.InBounds(end) {
			continue
		}

		path := make([]model.Position, 0, n)
		compatible := true
		pos := start
		for i := 0; i < n; i++ {
			existing := grid.Get(pos)
			if existing != 0 && existing != word[i] {
				compatible = false
				break
			}
			path = append(path, pos)
			pos = pos.Add(dir)
		}
		if !compatible {
			continue
		}

		for i, p := range path {
			grid.Set(p, word[i])
		}
		return path, true
	}

	return nil, false
}

// placeWinding runs a bounded number of DFS attempts from random start
// cells, exploring the 8 neighbors in random order and advancing only
// into cells that are unfilled or already hold the required grapheme.
// Cells already on the current path are never revisited, matching the
// verifier's no-reuse rule. Letters written during a failed branch are
// erased on backtrack.
func (s *Service) placeWinding(grid *model.Grid, word []rune) ([]model.Position, bool) {
	for attempt := 0; attempt < windingAttempts; attempt++ {
		start := model.Position{
			Row: s.random.Intn(grid.Rows),
			Col: s.random.Intn(grid.Cols),
		}
		existing := grid.Get(start)
		if existing != 0 && existing != word[0] {
			continue
		}

		visited := map[model.Position]bool{start: true}
		path := []model.Position{start}
		wrote := existing == 0
		grid.Set(start, word[0])

		if s.windFrom(grid, word, 1, start, visited, &path) {
			return path, true
		}

		if wrote {
			grid.Set(start, 0)
		}
	}

	return nil, false
}

// windFrom extends the current path by the word's idx-th grapheme,
// backtracking (and undoing its own writes) on dead ends
func (s *Service) windFrom(grid *model.Grid, word []rune, idx int, pos model.Position, visited map[model.Position]bool, path *[]model.Position) bool {
	if idx == len(word) {
		return true
	}

	for _, dir := range s.shuffledDirections() {
		next := pos.Add(dir)
		if !grid.InBounds(next) || visited[next] {
			continue
		}
		existing := grid.Get(next)
		if existing != 0 && existing != word[idx] {
			continue
		}

		wrote := existing == 0
		grid.Set(next, word[idx])
		visited[next] = true
		*path = append(*path, next)

		if s.windFrom(grid, word, idx+1, next, visited, path) {
			return true
		}

		*path = (*path)[:len(*path)-1]
		delete(visited, next)
		if wrote {
			grid.Set(next, 0)
		}
	}

	return false
}

// shuffledDirections returns the 8 adjacency offsets in random order
// (Fisher-Yates over the injected source)
func (s *Service) shuffledDirections() []model.Position {
	dirs := make([]model.Position, len(model.Directions))
	copy(dirs, model.Directions[:])
	for i := len(dirs) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

// fillRemaining assigns every still-unfilled cell an independently
// random grapheme from the language inventory
func (s *Service) fillRemaining(grid *model.Grid, provider language.Provider) {
	letters := provider.Letters()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			pos := model.Position{Row: row, Col: col}
			if grid.IsEmpty(pos) {
				grid.Set(pos, letters[s.random.Intn(len(letters))])
			}
		}
	}
}

func normalizeWith(provider language.Provider, word string) []rune {
	graphemes := []rune(word)
	for i, r := range graphemes {
		graphemes[i] = provider.Normalize(r)
	}
	return graphemes
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate(rows, cols int, lang language.Language, wordsToEmbed []string) (*model.Grid, []model.Placement, error)
}

var _ ServiceInterface = (*Service)(nil)
