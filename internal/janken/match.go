package janken

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Proposal is an opponent move together with the strategy that chose it.
type Proposal struct {
	Move   Move
	Source string
}

// MoveProposer picks the opponent's move for the current round.
// Implementations must always return a legal move.
type MoveProposer interface {
	Propose(ctx context.Context, human Move, history *History) Proposal
}

// Recorder receives every completed round, e.g. to archive it.
type Recorder interface {
	Record(ctx context.Context, matchID uuid.UUID, r Record) error
}

// Match owns the history of one session and plays rounds against it.
// At most one round is in flight at a time.
type Match struct {
	ID uuid.UUID

	mu       sync.Mutex
	history  *History
	proposer MoveProposer
	recorder Recorder
	logger   zerolog.Logger
}

// NewMatch creates a match with an empty history. recorder may be nil.
func NewMatch(proposer MoveProposer, recorder Recorder, logger zerolog.Logger) *Match {
	id := uuid.New()
	return &Match{
		ID:       id,
		history:  NewHistory(),
		proposer: proposer,
		recorder: recorder,
		logger:   logger.With().Str("match_id", id.String()).Logger(),
	}
}

// History returns the match history. Callers must not play rounds
// concurrently with reading it.
func (m *Match) History() *History {
	return m.history
}

// Played returns the number of completed rounds. Unlike History, it may be
// called while a round is in flight.
func (m *Match) Played() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.Len()
}

// Play runs one round: propose the opponent move, resolve the outcome and
// append the record. The returned round is in the Complete state.
func (m *Match) Play(ctx context.Context, human Move) (Round, error) {
	if !human.Valid() {
		return Round{}, fmt.Errorf("play: human move %v: %w", human, ErrIllegalMove)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	round := newRound(human)

	proposal := m.proposer.Propose(ctx, human, m.history)
	if err := round.setOpponent(proposal.Move, proposal.Source); err != nil {
		return Round{}, err
	}

	if err := round.resolve(m.history); err != nil {
		return Round{}, fmt.Errorf("play: %w", err)
	}

	record, _ := m.history.Last()
	m.logger.Debug().
		Int("round", record.Round).
		Str("human", record.Human.String()).
		Str("opponent", record.Opponent.String()).
		Str("source", round.Source).
		Str("outcome", record.Outcome.String()).
		Msg("round complete")

	if m.recorder != nil {
		if err := m.recorder.Record(ctx, m.ID, record); err != nil {
			m.logger.Warn().Err(err).Int("round", record.Round).Msg("failed to archive round")
		}
	}

	return *round, nil
}
