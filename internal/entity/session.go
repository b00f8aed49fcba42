package entity

const (
	MarkerX = "X"
	MarkerO = "O"
)

// Session holds the choices made in the menus for one run of the program.
type Session struct {
	HumanMarker    string
	ComputerMarker string
	First          Player
	ComputerName   string
}

func NewSession(humanMarker string, humanFirst bool, computerName string) Session {
	computerMarker := MarkerX
	if humanMarker == MarkerX {
		computerMarker = MarkerO
	}

	first := Computer
	if humanFirst {
		first = Human
	}

	return Session{
		HumanMarker:    humanMarker,
		ComputerMarker: computerMarker,
		First:          first,
		ComputerName:   computerName,
	}
}

// Marker returns the display marker of the player.
func (that Session) Marker(player Player) string {
	if player == Computer {
		return that.ComputerMarker
	}

	return that.HumanMarker
}

// Tally counts finished games of the current run, from the human's side.
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

func (that *Tally) Record(outcome Outcome) {
	switch outcome {
	case HumanWin:
		that.Wins++
	case ComputerWin:
		that.Losses++
	case Draw:
		that.Draws++
	case InProgress:
	}
}

func (that Tally) Games() int {
	return that.Wins + that.Losses + that.Draws
}
