// Package completion provides the text-generation backends the opponent
// consults. Every backend reduces to a single capability: prompt in,
// free-form text out.
package completion

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a backend answers without any text candidate.
var ErrEmptyResponse = errors.New("completion: empty response")

// Completer turns a rendered prompt into a completion string.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
