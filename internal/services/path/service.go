package path

import (
	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
)

// Service decides whether a submitted word traces a legal path on a
// grid: 8-directional adjacency, no cell reused within one path. The
// service is stateless; concurrent verifications against the same
// read-only grid are safe.
type Service struct{}

// New creates a new path verification service
func New() *Service {
	return &Service{}
}

// FindPath returns the first legal path spelling the word on the grid,
// or nil if none exists. Absence of a path is a normal outcome, not an
// error; the only error is an unknown language tag. Empty words and nil
// grids are trivial misses.
//
// Language awareness is confined to normalization: both the word and the
// grid cells are compared in canonical form, so e.g. a Hebrew query
// ending in a final-form letter matches a grid holding the canonical
// letter.
func (s *Service) FindPath(word string, grid *model.Grid, lang language.Language) ([]model.Position, error) {
	provider, err := language.For(lang)
	if err != nil {
		return nil, err
	}
	if grid == nil || word == "" {
		return nil, nil
	}

	target := []rune(word)
	for i, r := range target {
		target[i] = provider.Normalize(r)
	}

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			start := model.Position{Row: row, Col: col}
			if provider.Normalize(grid.Get(start)) != target[0] {
				continue
			}

			visited := map[model.Position]bool{start: true}
			path := []model.Position{start}
			if found := s.extend(grid, provider, target, 1, start, visited, &path); found {
				return path, nil
			}
		}
	}

	return nil, nil
}

// IsReachable reports whether the word traces any legal path on the grid
func (s *Service) IsReachable(word string, grid *model.Grid, lang language.Language) (bool, error) {
	path, err := s.FindPath(word, grid, lang)
	if err != nil {
		return false, err
	}
	return path != nil, nil
}

// extend grows the current path by the target's idx-th grapheme via DFS
// with backtracking. The visited set is scoped to this call chain; no
// state is shared across verifications.
func (s *Service) extend(grid *model.Grid, provider language.Provider, target []rune, idx int, pos model.Position, visited map[model.Position]bool, path *[]model.Position) bool {
	if idx == len(target) {
		return true
	}

	for _, dir := range model.Directions {
		next := pos.Add(dir)
		if !grid.InBounds(next) || visited[next] {
			continue
		}
		if provider.Normalize(grid.Get(next)) != target[idx] {
			continue
		}

		visited[next] = true
		*path = append(*path, next)

		if s.extend(grid, provider, target, idx+1, next, visited, path) {
			return true
		}

		*path = (*path)[:len(*path)-1]
		delete(visited, next)
	}

	return false
}

// Interface for dependency injection
type ServiceInterface interface {
	FindPath(word string, grid *model.Grid, lang language.Language) ([]model.Position, error)
	IsReachable(word string, grid *model.Grid, lang language.Language) (bool, error)
}

var _ ServiceInterface = (*Service)(nil)
