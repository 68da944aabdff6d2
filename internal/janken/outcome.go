package janken

import "fmt"

// Outcome is the result of one round from the human's point of view.
type Outcome int

const (
	Tie Outcome = iota + 1
	HumanWin
	OpponentWin
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "あいこです"
	case HumanWin:
		return "あなたの勝ちです"
	case OpponentWin:
		return "あなたの負けです"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Judge applies the beats-relation to a pair of legal moves.
func Judge(human, opponent Move) (Outcome, error) {
	if !human.Valid() {
		return 0, fmt.Errorf("human move %v: %w", human, ErrIllegalMove)
	}
	if !opponent.Valid() {
		return 0, fmt.Errorf("opponent move %v: %w", opponent, ErrIllegalMove)
	}

	switch {
	case human == opponent:
		return Tie, nil
	case human.Beats(opponent):
		return HumanWin, nil
	default:
		return OpponentWin, nil
	}
}
