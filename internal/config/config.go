package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrUnknownProvider is returned for an llm.provider value with no backend.
var ErrUnknownProvider = errors.New("unknown llm provider")

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// defaultModels is used when llm.model is left empty.
var defaultModels = map[string]string{
	ProviderOpenAI: "gemma3",
	ProviderGemini: "gemini-2.5-pro",
}

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	LLM     LLMConfig     `mapstructure:"llm"`
	Log     LogConfig     `mapstructure:"log"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

// LLMConfig selects and tunes the completion backend.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"`    // "openai" or "gemini"
	Model       string        `mapstructure:"model"`       // model identifier
	BaseURL     string        `mapstructure:"base_url"`    // OpenAI-compatible endpoint
	APIKey      string        `mapstructure:"api_key"`     // API key for the selected provider
	Temperature float32       `mapstructure:"temperature"` // sampling temperature
	Timeout     time.Duration `mapstructure:"timeout"`     // per-call deadline
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// ArchiveConfig points at the Supabase table finished rounds are written to.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Key     string `mapstructure:"key"`
	Table   string `mapstructure:"table"`
}

// Loader reads configuration into a Config. Each Loader owns its own viper
// instance so tests can load independently.
type Loader struct {
	v *viper.Viper
}

func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load reads .env (if present), then configPath or config.yaml from the
// default search paths, then environment variables.
func (l *Loader) Load(configPath string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	v := l.v
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join("$HOME", ".janken"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.AutomaticEnv()
	// llm.base_url becomes LLM_BASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Names kept from the existing .env layout.
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("archive.url", "ARCHIVE_URL", "SUPABASE_URL")
	_ = v.BindEnv("archive.key", "ARCHIVE_KEY", "SUPABASE_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := l.decode()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}
	return &cfg, nil
}

// Watch calls onChange with the re-read configuration whenever the config
// file changes. It is a no-op when no file was loaded.
func (l *Loader) Watch(onChange func(*Config, error)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.decode()
		if err != nil {
			onChange(nil, err)
			return
		}
		onChange(cfg, cfg.Validate())
	})
	l.v.WatchConfig()
}

func setDefaults(v *viper.Viper) {
	// Local Ollama server, as the game was first played.
	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.model", "") // per provider, see defaultModels
	v.SetDefault("llm.base_url", "http://localhost:11434/v1")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.temperature", 0.6)
	v.SetDefault("llm.timeout", "30s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.url", "")
	v.SetDefault("archive.key", "")
	v.SetDefault("archive.table", "janken_rounds")
}

// Validate checks values that would otherwise fail deep inside a round.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI:
	case ProviderGemini:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for provider %q", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required for provider %q", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive, got %s", c.LLM.Timeout)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be within [0, 2], got %v", c.LLM.Temperature)
	}
	if c.Archive.Enabled && (c.Archive.URL == "" || c.Archive.Key == "") {
		return errors.New("archive.url and archive.key are required when archive.enabled is set")
	}
	return nil
}
