package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Position, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - plays the optimal move for the side whose turn it is.
func (that *botService) MakeTurn(game *entity.Game) (entity.Position, error) {
	log := that.logger.With("method", "MakeTurn", "mark", game.Turn.String())

	engine := minimax.New(game.Turn)

	result, err := engine.Search(&game.Board)
	if errors.Is(err, apperror.ErrPositionNotInProgress) {
		return entity.Position{}, fmt.Errorf("%w: %w", ErrNoAvailableMoves, err)
	}
	if err != nil {
		return entity.Position{}, fmt.Errorf("search failed: %w", err)
	}

	log.Debug("search finished",
		"row", result.Move.Row,
		"col", result.Move.Col,
		"score", result.Score,
		"candidates", len(result.Candidates),
		"nodes", result.Nodes,
	)

	if err = tictactoe.MakeTurn(game, game.Turn, result.Move); err != nil {
		return entity.Position{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return result.Move, nil
}
