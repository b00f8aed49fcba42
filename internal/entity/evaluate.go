package entity

// Outcome is derived from the board on demand and never stored.
type Outcome int

const (
	InProgress Outcome = iota
	HumanWin
	ComputerWin
	Draw
)

func (that Outcome) String() string {
	switch that {
	case HumanWin:
		return "human_win"
	case ComputerWin:
		return "computer_win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// WinLines holds the 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// HasWon reports whether the player occupies a full line.
func (that *Board) HasWon(player Player) bool {
	for _, line := range WinLines {
		if that.At(line[0]) == player && that.At(line[1]) == player && that.At(line[2]) == player {
			return true
		}
	}

	return false
}

// IsTerminal reports whether either player has won. A full board without a winner is not terminal.
func (that *Board) IsTerminal() bool {
	return that.HasWon(Human) || that.HasWon(Computer)
}

// Evaluate scores the board: +1 computer win, -1 human win, 0 otherwise.
func (that *Board) Evaluate() int {
	switch {
	case that.HasWon(Computer):
		return +1
	case that.HasWon(Human):
		return -1
	default:
		return 0
	}
}

func (that *Board) Outcome() Outcome {
	switch {
	case that.HasWon(Human):
		return HumanWin
	case that.HasWon(Computer):
		return ComputerWin
	case that.IsFull():
		return Draw
	default:
		return InProgress
	}
}

func (that Outcome) IsFinished() bool {
	return that != InProgress
}
