package entity

type OutcomeStatus uint8

const (
	StatusInProgress OutcomeStatus = iota
	StatusWin
	StatusDraw
)

// Outcome is never stored on the board, it is recomputed from the cells.
// Winner is meaningful only when Status is StatusWin.
type Outcome struct {
	Status OutcomeStatus
	Winner Player
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(player Player) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return "win:" + that.Winner.String()
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
