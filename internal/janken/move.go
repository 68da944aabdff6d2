package janken

import "fmt"

// Move is one of the three hand signs. The zero value is not a legal move.
type Move int

const (
	Rock Move = iota + 1
	Scissors
	Paper
)

// Moves lists the legal moves in display order.
var Moves = []Move{Rock, Scissors, Paper}

var moveNames = map[Move]string{
	Rock:     "グー",
	Scissors: "チョキ",
	Paper:    "パー",
}

// String returns the Japanese hand sign name used in prompts and output.
func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Valid reports whether m is one of the three legal moves.
func (m Move) Valid() bool {
	_, ok := moveNames[m]
	return ok
}

// Beats reports whether m wins against other.
func (m Move) Beats(other Move) bool {
	switch m {
	case Rock:
		return other == Scissors
	case Scissors:
		return other == Paper
	case Paper:
		return other == Rock
	}
	return false
}

// ParseMove matches s exactly against the legal move names.
func ParseMove(s string) (Move, bool) {
	for _, m := range Moves {
		if moveNames[m] == s {
			return m, true
		}
	}
	return 0, false
}

// MoveNames returns the legal move names in display order.
func MoveNames() []string {
	names := make([]string, len(Moves))
	for i, m := range Moves {
		names[i] = m.String()
	}
	return names
}
