package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - places player's mark at pos and advances the game.
// A rejected move leaves the game untouched.
func MakeTurn(game *entity.Game, player entity.Player, pos entity.Position) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, player, pos); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board.Set(pos, player.Cell())
	updateGameStatus(game, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, player entity.Player, pos entity.Position) error {
	if !game.Board.IsValid(pos) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, pos.Row, pos.Col)
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if game.Board.Get(pos) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, player entity.Player) {
	game.UpdateGameState()
	if game.IsOngoing() {
		game.Turn = player.Opponent()
	}
}
