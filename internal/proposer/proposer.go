// Package proposer chooses the opponent's move. A model-backed strategy is
// tried first; any failure to obtain a legal move from it falls back to a
// uniform random draw.
package proposer

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"GO-janken/internal/janken"
)

// Proposer composes a primary strategy with a fallback that cannot fail.
type Proposer struct {
	primary  Strategy
	fallback *RandomStrategy
	timeout  time.Duration
	logger   zerolog.Logger
}

// New returns a proposer. A zero timeout leaves the primary call bounded
// only by the caller's context.
func New(primary Strategy, fallback *RandomStrategy, timeout time.Duration, logger zerolog.Logger) *Proposer {
	if fallback == nil {
		fallback = NewRandomStrategy(nil)
	}
	return &Proposer{
		primary:  primary,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger,
	}
}

// Propose always returns a legal move. Backend errors, timeouts and
// unparseable replies are logged and replaced by a random move; the
// primary strategy is never retried.
func (p *Proposer) Propose(ctx context.Context, human janken.Move, history *janken.History) janken.Proposal {
	if p.primary != nil {
		callCtx := ctx
		if p.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, p.timeout)
			defer cancel()
		}

		m, err := p.primary.Suggest(callCtx, human, history)
		if err == nil && m.Valid() {
			return janken.Proposal{Move: m, Source: p.primary.Name()}
		}
		p.logger.Warn().
			Err(err).
			Str("strategy", p.primary.Name()).
			Int("round", history.Len()+1).
			Msg("falling back to random move")
	}

	m, _ := p.fallback.Suggest(ctx, human, history)
	return janken.Proposal{Move: m, Source: p.fallback.Name()}
}

var _ janken.MoveProposer = (*Proposer)(nil)
