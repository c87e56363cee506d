package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

const (
	msgWelcome      = "Let's play Tic-Tac-Toe!"
	msgBotTurn      = "AI's turn..."
	msgHumanTurn    = "Your turn! Enter row (0-2) and column (0-2) separated by space:"
	msgInvalidMove  = "Invalid move. Please try again."
	msgBotWins      = "AI wins!"
	msgHumanWins    = "You win!"
	msgTie          = "It's a tie!"
	boardHorizontal = "---------"
)

var ErrInputClosed = errors.New("input closed")

type uGame interface {
	NewGame(botMark entity.Player) *entity.Game
	MakeTurn(ctx context.Context, game *entity.Game, pos entity.Position) error
	BotTurn(ctx context.Context, game *entity.Game) (entity.Position, error)
	SelfPlay(ctx context.Context, onTurn usecase.TurnFunc) (*entity.Game, error)
}

// Shell is the text front end: it renders the board, reads moves and runs the turn loop.
type Shell struct {
	logger *slog.Logger
	uGame  uGame

	out   io.Writer
	lines <-chan string
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		out:    out,
		lines:  readLines(in),
	}
}

// readLines - feeds input lines into a channel so that reads can be abandoned on cancellation.
func readLines(in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}

// Play - runs one game between the human and the bot. Returns the finished game.
func (that *Shell) Play(ctx context.Context, botMark entity.Player) (*entity.Game, error) {
	log := that.logger.With("method", "Play")

	game := that.uGame.NewGame(botMark)

	that.println(msgWelcome)
	that.printBoard(&game.Board)

	for game.IsOngoing() {
		if game.IsBotTurn() {
			that.println(msgBotTurn)
			if _, err := that.uGame.BotTurn(ctx, game); err != nil {
				return game, fmt.Errorf("failed to play bot turn: %w", err)
			}
			that.printBoard(&game.Board)
			continue
		}

		if err := that.humanTurn(ctx, game); err != nil {
			return game, err
		}
	}

	log.Info("game finished", "result", game.Result.String())
	that.printResult(game)

	return game, nil
}

// humanTurn - reads lines until a legal move is entered, then plays it.
func (that *Shell) humanTurn(ctx context.Context, game *entity.Game) error {
	that.println(msgHumanTurn)

	for {
		line, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		pos, err := ParseMove(line, &game.Board)
		if err != nil {
			that.logger.Debug("rejected input", "input", line, "error", err)
			that.println(msgInvalidMove)
			continue
		}

		err = that.uGame.MakeTurn(ctx, game, pos)
		if err != nil && !errors.Is(err, apperror.ErrGameFinished) {
			return fmt.Errorf("failed to play human turn: %w", err)
		}

		that.printBoard(&game.Board)

		return nil
	}
}

// SelfPlay - lets the bot play both sides and prints every position.
func (that *Shell) SelfPlay(ctx context.Context) (*entity.Game, error) {
	that.println(msgWelcome)

	game, err := that.uGame.SelfPlay(ctx, func(game *entity.Game, pos entity.Position) {
		// after a move the opponent is to play, unless the game is over
		mover := game.Turn.Opponent()
		if game.IsFinished() {
			mover = game.Turn
		}

		that.printf("%s plays %d %d\n", mover, pos.Row, pos.Col)
		that.printBoard(&game.Board)
	})
	if err != nil {
		return game, fmt.Errorf("failed to self-play: %w", err)
	}

	that.printResult(game)

	return game, nil
}

func (that *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return line, nil
	}
}

func (that *Shell) printResult(game *entity.Game) {
	switch {
	case game.Result.IsWin() && (game.SelfPlay || game.Result.Winner == game.BotMark):
		that.println(msgBotWins)
	case game.Result.IsWin():
		that.println(msgHumanWins)
	default:
		that.println(msgTie)
	}
}

func (that *Shell) printBoard(board *entity.Board) {
	that.printf("%s", RenderBoard(board))
}

func (that *Shell) println(msg string) {
	that.printf("%s\n", msg)
}

func (that *Shell) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// RenderBoard - draws the board framed by horizontal rules, one "| a b c |" line per row.
func RenderBoard(board *entity.Board) string {
	var sb strings.Builder

	sb.WriteString(boardHorizontal + "\n")
	for _, row := range board {
		sb.WriteString("| ")
		for _, cell := range row {
			sb.WriteString(cell.String() + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(boardHorizontal + "\n")

	return sb.String()
}

// ParseMove - accepts exactly two non-negative integers naming an empty cell.
func ParseMove(line string, board *entity.Board) (entity.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Position{}, fmt.Errorf("%w: expected row and column", apperror.ErrInvalidCell)
	}

	row, err := parseDigits(fields[0])
	if err != nil {
		return entity.Position{}, err
	}

	col, err := parseDigits(fields[1])
	if err != nil {
		return entity.Position{}, err
	}

	pos := entity.Position{Row: row, Col: col}
	if !board.IsValid(pos) {
		return entity.Position{}, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if board.Get(pos) != entity.EmptyCell {
		return entity.Position{}, apperror.ErrCellOccupied
	}

	return pos, nil
}

func parseDigits(field string) (int, error) {
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidCell, field)
		}
	}

	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidCell, err)
	}

	return value, nil
}
