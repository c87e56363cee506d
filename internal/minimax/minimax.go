// Package minimax implements exhaustive game-tree search over the 3x3 board.
//
// The search has no pruning, no transposition table and no depth weighting:
// every terminal position scores +1, 0 or -1 for the maximizing side, so a
// win in one move and a win in five moves are worth the same. Among equally
// valued moves the first one in row-major order is chosen.
package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	ScoreWin  = 1
	ScoreDraw = 0
	ScoreLoss = -1
)

// Candidate is a top-level move together with its minimax value.
type Candidate struct {
	Move  entity.Position
	Score int
}

// Result describes a completed top-level search.
type Result struct {
	Move       entity.Position
	Score      int
	Candidates []Candidate
	Nodes      int
}

type Engine struct {
	maximizer entity.Player
	nodes     int
}

// New - creates an engine that plays for maximizer.
func New(maximizer entity.Player) *Engine {
	return &Engine{
		maximizer: maximizer,
	}
}

func (that *Engine) Maximizer() entity.Player {
	return that.maximizer
}

// Evaluate - returns the game-theoretic value of board for the maximizer.
// maximizing tells whose move it is. The board is restored before returning.
func (that *Engine) Evaluate(board *entity.Board, maximizing bool) int {
	that.nodes++

	switch outcome := board.Outcome(); {
	case outcome.IsWin() && outcome.Winner == that.maximizer:
		return ScoreWin
	case outcome.IsWin():
		return ScoreLoss
	case outcome.IsDraw():
		return ScoreDraw
	}

	mover := that.maximizer
	if !maximizing {
		mover = that.maximizer.Opponent()
	}

	best := ScoreWin + 1
	if maximizing {
		best = ScoreLoss - 1
	}

	for _, pos := range board.EmptyCells() {
		board.Set(pos, mover.Cell())
		score := that.Evaluate(board, !maximizing)
		board.Set(pos, entity.EmptyCell)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

// BestMove - returns the optimal move for the maximizer.
// The board must be in progress, otherwise ErrPositionNotInProgress is returned.
func (that *Engine) BestMove(board *entity.Board) (entity.Position, error) {
	result, err := that.Search(board)
	if err != nil {
		return entity.Position{}, err
	}

	return result.Move, nil
}

// Search - same selection as BestMove, additionally reporting every candidate's
// value and the number of visited nodes.
func (that *Engine) Search(board *entity.Board) (Result, error) {
	if outcome := board.Outcome(); !outcome.IsInProgress() {
		return Result{}, fmt.Errorf("%w: %s", apperror.ErrPositionNotInProgress, outcome)
	}

	that.nodes = 0

	cells := board.EmptyCells()
	result := Result{
		Score:      ScoreLoss - 1,
		Candidates: make([]Candidate, 0, len(cells)),
	}

	for _, pos := range cells {
		board.Set(pos, that.maximizer.Cell())
		score := that.Evaluate(board, false)
		board.Set(pos, entity.EmptyCell)

		result.Candidates = append(result.Candidates, Candidate{Move: pos, Score: score})

		// strict comparison keeps the earliest move on ties
		if score > result.Score {
			result.Score = score
			result.Move = pos
		}
	}

	result.Nodes = that.nodes

	return result, nil
}
