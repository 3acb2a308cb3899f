package game

// Move relocates the piece at From to To, capturing an opposing piece at To if there is one.
// A Move only has meaning relative to the State it was generated for.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return m.From.String() + " --> " + m.To.String()
}

// directions are the per-side advancing offsets in the order move generation tries them.
var directions = [2][3]Position{
	{{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}},
}
