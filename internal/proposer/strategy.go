package proposer

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"GO-janken/internal/completion"
	"GO-janken/internal/janken"
)

// ErrUnparseable is returned when the model reply holds no legal move.
var ErrUnparseable = errors.New("no legal move in completion")

// Strategy suggests an opponent move for the current round.
type Strategy interface {
	Name() string
	Suggest(ctx context.Context, human janken.Move, history *janken.History) (janken.Move, error)
}

// ModelStrategy asks a completion backend and parses its reply.
type ModelStrategy struct {
	completer completion.Completer
}

func NewModelStrategy(c completion.Completer) *ModelStrategy {
	return &ModelStrategy{completer: c}
}

func (s *ModelStrategy) Name() string { return "model" }

func (s *ModelStrategy) Suggest(ctx context.Context, human janken.Move, history *janken.History) (janken.Move, error) {
	reply, err := s.completer.Complete(ctx, RenderPrompt(history))
	if err != nil {
		return 0, err
	}
	m, ok := ParseChoice(reply)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, reply)
	}
	return m, nil
}

// RandomStrategy draws uniformly from the legal moves. It never fails.
type RandomStrategy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomStrategy uses rng, or a randomly seeded source when rng is nil.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomStrategy{rng: rng}
}

func (s *RandomStrategy) Name() string { return "random" }

func (s *RandomStrategy) Suggest(ctx context.Context, human janken.Move, history *janken.History) (janken.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return janken.Moves[s.rng.IntN(len(janken.Moves))], nil
}
