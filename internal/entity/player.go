package entity

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Player is one of the two sides. X always moves first.
type Player uint8

const (
	PlayerX Player = Player(CellX)
	PlayerO Player = Player(CellO)
)

// Cell returns the cell value occupied by the player's mark.
func (that Player) Cell() Cell {
	return Cell(that)
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return that.Cell().String()
}

// ParseMark - converts "X" or "O" (case-insensitive) into a Player.
func ParseMark(mark string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}
}

// RandomMarks - returns the human's and the bot's marks in random order.
func RandomMarks() (Player, Player) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
