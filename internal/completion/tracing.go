package completion

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type tracedCompleter struct {
	next   Completer
	name   string
	logger zerolog.Logger
}

// WithTracing logs the start, duration and result of every call to next at
// debug level. Failures are left for the caller to report.
func WithTracing(next Completer, name string, logger zerolog.Logger) Completer {
	return &tracedCompleter{
		next:   next,
		name:   name,
		logger: logger.With().Str("span", "completion").Str("backend", name).Logger(),
	}
}

func (t *tracedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	t.logger.Debug().Int("prompt_len", len(prompt)).Msg("Starting span")

	text, err := t.next.Complete(ctx, prompt)

	t.logger.Debug().
		Err(err).
		Dur("duration", time.Since(start)).
		Int("response_len", len(text)).
		Msg("Ending span")

	return text, err
}
