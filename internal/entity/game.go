package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the state owned by the turn loop for the duration of one match.
type Game struct {
	Board     Board   `json:"board"`
	Turn      Player  `json:"player_turn"`
	Status    string  `json:"status"`
	Result    Outcome `json:"result"`
	BotMark   Player  `json:"bot_mark"`
	HumanMark Player  `json:"human_mark"`
	SelfPlay  bool    `json:"self_play,omitempty"`
}

// NewGame - creates an empty game where X moves first.
func NewGame(botMark Player) *Game {
	return &Game{
		Board:     NewBoard(),
		Turn:      PlayerX,
		Status:    StatusOngoing,
		Result:    InProgress(),
		BotMark:   botMark,
		HumanMark: botMark.Opponent(),
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && (that.SelfPlay || that.Turn == that.BotMark)
}

func (that *Game) IsHumanTurn() bool {
	return that.IsOngoing() && !that.SelfPlay && that.Turn == that.HumanMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// UpdateGameState - finishes the game when the board reached a terminal outcome.
func (that *Game) UpdateGameState() {
	that.Result = that.Board.Outcome()
	if that.Result.IsInProgress() {
		that.Status = StatusOngoing
		return
	}
	that.Status = StatusFinished
}
