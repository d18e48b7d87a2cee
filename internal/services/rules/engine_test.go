package rules

import (
	"errors"
	"testing"

	"github.com/mcoot/scrabb-go/internal/model"
	"github.com/mcoot/scrabb-go/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type EngineSuite struct {
	suite.Suite
	board  *model.Board
	engine *Engine
	logs   *testutil.LogBuffer
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	logger, logs := testutil.BufferLogger()
	s.board = model.NewBoard()
	s.engine = New(s.board, logger)
	s.logs = logs
}

func (s *EngineSuite) TestPlayCommitsTiles() {
	a := model.NewTile('A', 1)
	b := model.NewTile('B', 1)

	result, err := s.engine.Play([]model.Placement{{Row: 7, Col: 7, Tile: a}, {Row: 7, Col: 8, Tile: b}})
	s.Require().NoError(err)

	s.Equal(4, result.Score)
	s.Equal(model.OrientationHorizontal, result.Orientation)
	s.False(s.board.IsEmpty())
	s.Same(a, s.board.CellAt(7, 7))
	s.Same(b, s.board.CellAt(7, 8))
	s.Equal(model.BonusNone, s.board.BonusAt(model.Center))
}

func (s *EngineSuite) TestPlayWithDoubleLetterLayout() {
	board, err := model.NewBoardWithLayout(model.BonusLayout{DoubleLetter: []model.Position{pos(7, 8)}})
	s.Require().NoError(err)
	engine := New(board, testutil.NopLogger())

	result, err := engine.Play([]model.Placement{at(7, 7, 'A', 1), at(7, 8, 'B', 1)})
	s.Require().NoError(err)

	s.Equal(3, result.Score)
	s.False(board.IsEmpty())
}

func (s *EngineSuite) TestSequenceOfPlays() {
	_, err := s.engine.Play(line(7, 7, model.OrientationHorizontal, "CAT"))
	s.Require().NoError(err)

	result, err := s.engine.Play([]model.Placement{at(7, 10, 'E', 1), at(7, 11, 'S', 1)})
	s.Require().NoError(err)

	// CATES all worth 1, (7,11) double letter still live
	s.Equal(1+1+1+1+2, result.Score)
	s.Equal(model.BonusNone, s.board.BonusAt(pos(7, 11)))
	s.Len(s.board.Tiles(), 5)
}

func (s *EngineSuite) TestRejectedPlayReturnsPlayError() {
	placements := []model.Placement{at(7, 8, 'A', 1), at(7, 9, 'B', 1)}

	result, err := s.engine.Play(placements)

	s.Nil(result)
	s.ErrorIs(err, model.ErrInvalidPlay)
	var playErr *model.PlayError
	s.Require().True(errors.As(err, &playErr))
	s.Equal(model.ReasonFirstPlayNotOnCenter, playErr.Reason)
	s.Equal(model.OrientationHorizontal, playErr.Orientation)
	s.Equal(model.Positions(placements), model.Positions(playErr.Placements))
}

func (s *EngineSuite) TestRejectedPlayReportsNoneOrientation() {
	_, err := s.engine.Play([]model.Placement{at(7, 7, 'A', 1), at(8, 8, 'B', 1)})

	var playErr *model.PlayError
	s.Require().True(errors.As(err, &playErr))
	s.Equal(model.ReasonInvalidOrientation, playErr.Reason)
	s.Equal(model.OrientationNone, playErr.Orientation)
}

func (s *EngineSuite) TestRejectedPlayLeavesBoardUntouched() {
	_, err := s.engine.Play(line(7, 7, model.OrientationHorizontal, "CAT"))
	s.Require().NoError(err)
	tilesBefore := s.board.Tiles()
	layoutBefore := s.board.Layout()

	rejected := [][]model.Placement{
		{at(7, 7, 'X', 8)},
		line(0, 0, model.OrientationHorizontal, "ZAP"),
		{at(6, 7, 'A', 1), at(6, 9, 'B', 1)},
		{at(6, 6, 'A', 1), at(8, 8, 'B', 1)},
	}
	for _, placements := range rejected {
		_, err := s.engine.Play(placements)
		s.ErrorIs(err, model.ErrInvalidPlay)
	}

	s.Equal(tilesBefore, s.board.Tiles())
	s.Equal(layoutBefore, s.board.Layout())
}

func (s *EngineSuite) TestRejectedFirstPlayKeepsBoardEmpty() {
	_, err := s.engine.Play([]model.Placement{at(7, 7, 'A', 1)})
	s.ErrorIs(err, model.ErrInvalidPlay)
	s.True(s.board.IsEmpty())
	s.Nil(s.board.CellAt(7, 7))
}

func (s *EngineSuite) TestCheckDoesNotMutate() {
	orientation, reason := s.engine.Check(line(7, 7, model.OrientationVertical, "AB"))

	s.Equal(model.OrientationVertical, orientation)
	s.Equal(model.ReasonValid, reason)
	s.True(s.board.IsEmpty())
}

func (s *EngineSuite) TestPreviewScoresWithoutCommitting() {
	result, err := s.engine.Preview([]model.Placement{at(7, 7, 'A', 1), at(7, 8, 'B', 1)})
	s.Require().NoError(err)

	s.Equal(4, result.Score)
	s.True(s.board.IsEmpty())
	s.Equal(model.BonusDoubleWord, s.board.BonusAt(model.Center))
}

func (s *EngineSuite) TestPreviewRejects() {
	_, err := s.engine.Preview([]model.Placement{at(7, 7, 'A', 1)})

	var playErr *model.PlayError
	s.Require().True(errors.As(err, &playErr))
	s.Equal(model.ReasonFirstPlayTooFewTiles, playErr.Reason)
}

func (s *EngineSuite) TestPlayIsLogged() {
	_, err := s.engine.Play([]model.Placement{at(7, 7, 'A', 1), at(7, 8, 'B', 1)})
	s.Require().NoError(err)
	_, err = s.engine.Play([]model.Placement{at(0, 0, 'A', 1), at(0, 1, 'B', 1)})
	s.Require().Error(err)

	out := s.logs.String()
	s.Contains(out, `"msg":"play committed"`)
	s.Contains(out, `"score":4`)
	s.Contains(out, `"msg":"play rejected"`)
	s.Contains(out, `"reason":"NOT_ADJACENT"`)
}

func (s *EngineSuite) TestBoardAccessor() {
	s.Same(s.board, s.engine.Board())
}
