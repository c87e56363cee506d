package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type GameUseCase interface {
	NewGame(botMark entity.Player) *entity.Game

	MakeTurn(ctx context.Context, game *entity.Game, pos entity.Position) error
	BotTurn(ctx context.Context, game *entity.Game) (entity.Position, error)

	SelfPlay(ctx context.Context, onTurn TurnFunc) (*entity.Game, error)
}

// TurnFunc is notified after every move made during self-play.
type TurnFunc func(game *entity.Game, pos entity.Position)

type botService interface {
	MakeTurn(game *entity.Game) (entity.Position, error)
}

type gameUseCase struct {
	logger     *slog.Logger
	botService botService
}

func NewGameUseCase(logger *slog.Logger, botService botService) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "usecase"),
		botService: botService,
	}
}

func (that *gameUseCase) NewGame(botMark entity.Player) *entity.Game {
	that.logger.Debug("new game", "bot", botMark.String(), "human", botMark.Opponent().String())

	return entity.NewGame(botMark)
}

// MakeTurn - applies the human move. ErrGameFinished reports that the move ended the game.
func (that *gameUseCase) MakeTurn(_ context.Context, game *entity.Game, pos entity.Position) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err := tictactoe.MakeTurn(game, game.HumanMark, pos); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("human turn", "row", pos.Row, "col", pos.Col, "status", game.Status)

	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}

// BotTurn - lets the bot play for the side to move.
func (that *gameUseCase) BotTurn(ctx context.Context, game *entity.Game) (entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return entity.Position{}, fmt.Errorf("bot turn canceled: %w", err)
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Position{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	pos, err := that.botService.MakeTurn(game)
	if err != nil {
		return entity.Position{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot turn", "row", pos.Row, "col", pos.Col, "status", game.Status)

	return pos, nil
}

// SelfPlay - plays the bot against itself from the empty board until the game ends.
// onTurn may be nil.
func (that *gameUseCase) SelfPlay(ctx context.Context, onTurn TurnFunc) (*entity.Game, error) {
	game := that.NewGame(entity.PlayerX)
	game.SelfPlay = true

	for game.IsOngoing() {
		pos, err := that.BotTurn(ctx, game)
		if err != nil {
			return game, fmt.Errorf("self-play stopped: %w", err)
		}

		if onTurn != nil {
			onTurn(game, pos)
		}
	}

	that.logger.Info("self-play finished", "result", game.Result.String())

	return game, nil
}
