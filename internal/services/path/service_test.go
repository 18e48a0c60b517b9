package path

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
)

type PathSuite struct {
	suite.Suite
	service *Service
}

func TestPathSuite(t *testing.T) {
	suite.Run(t, new(PathSuite))
}

func (s *PathSuite) SetupTest() {
	s.service = New()
}

// gridFromRows builds a grid out of equal-length row strings
func gridFromRows(rows ...string) *model.Grid {
	grid := model.NewGrid(len(rows), len([]rune(rows[0])))
	for r, row := range rows {
		for c, grapheme := range []rune(row) {
			grid.Set(model.Position{Row: r, Col: c}, grapheme)
		}
	}
	return grid
}

func (s *PathSuite) TestStraightWord() {
	grid := gridFromRows(
		"CATX",
		"XXXX",
	)

	path, err := s.service.FindPath("CAT", grid, language.English)
	s.Require().NoError(err)
	s.Equal([]model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, path)
}

func (s *PathSuite) TestLowercaseQueryMatchesGrid() {
	grid := gridFromRows("CAT")

	ok, err := s.service.IsReachable("cat", grid, language.English)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *PathSuite) TestWindingWordWithDiagonals() {
	// WORD snakes: W(0,0) -> O(1,1) diag -> R(1,2) -> D(0,2) up
	grid := gridFromRows(
		"WXD",
		"XOR",
	)

	path, err := s.service.FindPath("WORD", grid, language.English)
	s.Require().NoError(err)
	s.Require().NotNil(path)
	s.Len(path, 4)
	for i := 1; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		s.True(dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1 && (dr != 0 || dc != 0),
			"consecutive cells must be adjacent")
	}
}

func (s *PathSuite) TestCellCannotBeReused() {
	// Only one A: ABA would need to visit it twice
	grid := gridFromRows("AB")

	ok, err := s.service.IsReachable("ABA", grid, language.English)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *PathSuite) TestRepeatedLetterOnDistinctCells() {
	grid := gridFromRows("ABA")

	path, err := s.service.FindPath("ABA", grid, language.English)
	s.Require().NoError(err)
	s.Require().NotNil(path)

	seen := make(map[model.Position]bool)
	for _, pos := range path {
		s.False(seen[pos], "path must not revisit %v", pos)
		seen[pos] = true
	}
}

func (s *PathSuite) TestNonAdjacentLettersMiss() {
	grid := gridFromRows(
		"CXT",
		"XAX",
		"XXX",
	)
	// C(0,0) and A(1,1) touch, but a second grid without adjacency fails
	ok, err := s.service.IsReachable("CAT", grid, language.English)
	s.Require().NoError(err)
	s.True(ok)

	spread := gridFromRows(
		"CXXT",
		"XXXX",
		"XAXX",
	)
	ok, err = s.service.IsReachable("CAT", spread, language.English)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *PathSuite) TestDeadEndBacktracking() {
	// The T east of A is a trap with no S next to it; the search has to
	// back out and take the T below instead
	grid := gridFromRows(
		"CAT",
		"STX",
	)

	path, err := s.service.FindPath("CATS", grid, language.English)
	s.Require().NoError(err)
	s.Require().NotNil(path)
	s.Equal(model.Position{Row: 1, Col: 1}, path[2])
	s.Equal(model.Position{Row: 1, Col: 0}, path[3])
}

func (s *PathSuite) TestSingleGrapheme() {
	grid := gridFromRows("XQ")

	path, err := s.service.FindPath("Q", grid, language.English)
	s.Require().NoError(err)
	s.Equal([]model.Position{{Row: 0, Col: 1}}, path)
}

func (s *PathSuite) TestEmptyWordAndNilGrid() {
	grid := gridFromRows("AB")

	path, err := s.service.FindPath("", grid, language.English)
	s.Require().NoError(err)
	s.Nil(path)

	path, err = s.service.FindPath("AB", nil, language.English)
	s.Require().NoError(err)
	s.Nil(path)
}

func (s *PathSuite) TestUnknownLanguage() {
	grid := gridFromRows("AB")

	_, err := s.service.FindPath("AB", grid, language.Language("klingon"))
	s.ErrorIs(err, language.ErrUnsupportedLanguage)
}

func (s *PathSuite) TestHebrewFinalFormQuery() {
	// Grid holds the canonical kaf; the query ends with the final form
	grid := gridFromRows(
		"דר",
		"אכ",
	)

	ok, err := s.service.IsReachable("דרך", grid, language.Hebrew)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *PathSuite) TestSwedishLetters() {
	grid := gridFromRows(
		"ÅAX",
		"XXX",
	)

	ok, err := s.service.IsReachable("åa", grid, language.Swedish)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *PathSuite) TestWordLongerThanGrid() {
	grid := gridFromRows("AB")

	ok, err := s.service.IsReachable("ABAB", grid, language.English)
	s.Require().NoError(err)
	s.False(ok)
}
