package completion

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"GO-janken/internal/config"
)

// New builds the backend selected by cfg, wrapped with tracing. The returned
// close function releases backend resources and is never nil.
func New(ctx context.Context, cfg config.LLMConfig, logger zerolog.Logger) (Completer, func() error, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.APIKey, cfg.Model, cfg.Temperature)
		if err != nil {
			return nil, nil, err
		}
		return WithTracing(g, cfg.Provider, logger), g.Close, nil
	case config.ProviderOpenAI:
		o := NewOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Temperature)
		return WithTracing(o, cfg.Provider, logger), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}
