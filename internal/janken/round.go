package janken

import "fmt"

// State is the progress of a single round.
type State int

const (
	AwaitingOpponentMove State = iota
	AwaitingOutcome
	Complete
)

func (s State) String() string {
	switch s {
	case AwaitingOpponentMove:
		return "awaiting_opponent_move"
	case AwaitingOutcome:
		return "awaiting_outcome"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Round is the transient state of one round while it is being processed.
type Round struct {
	Human    Move
	Opponent Move
	Outcome  Outcome
	State    State
	// Source names the strategy that produced Opponent.
	Source string
}

func newRound(human Move) *Round {
	return &Round{Human: human, State: AwaitingOpponentMove}
}

func (r *Round) setOpponent(m Move, source string) error {
	if r.State != AwaitingOpponentMove {
		return fmt.Errorf("set opponent move in state %s", r.State)
	}
	r.Opponent = m
	r.Source = source
	r.State = AwaitingOutcome
	return nil
}

func (r *Round) resolve(history *History) error {
	if r.State != AwaitingOutcome {
		return fmt.Errorf("resolve in state %s", r.State)
	}
	outcome, err := Resolve(r.Human, r.Opponent, history)
	if err != nil {
		return err
	}
	r.Outcome = outcome
	r.State = Complete
	return nil
}
