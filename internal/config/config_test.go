package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests the config package functionality
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
	for _, k := range []string{
		"LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL", "LLM_API_KEY", "LLM_TEMPERATURE", "LLM_TIMEOUT",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "SUPABASE_URL", "SUPABASE_KEY",
		"ARCHIVE_ENABLED", "ARCHIVE_URL", "ARCHIVE_KEY", "LOG_LEVEL",
	} {
		suite.T().Setenv(k, "")
		os.Unsetenv(k)
	}
}

func (suite *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(suite.tempDir, "config.yaml")
	require.NoError(suite.T(), os.WriteFile(path, []byte(content), 0644))
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigWithDefaults() {
	cfg, err := NewLoader().Load("")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(suite.T(), "gemma3", cfg.LLM.Model)
	assert.Equal(suite.T(), "http://localhost:11434/v1", cfg.LLM.BaseURL)
	assert.InDelta(suite.T(), 0.6, cfg.LLM.Temperature, 1e-6)
	assert.Equal(suite.T(), 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(suite.T(), "info", cfg.Log.Level)
	assert.False(suite.T(), cfg.Archive.Enabled)
	assert.Equal(suite.T(), "janken_rounds", cfg.Archive.Table)
}

func (suite *ConfigTestSuite) TestLoadConfigWithFile() {
	path := suite.writeConfig(`
llm:
  provider: gemini
  model: gemini-2.5-pro
  api_key: test-key
  temperature: 0.2
  timeout: 5s
log:
  level: debug
  pretty: false
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), ProviderGemini, cfg.LLM.Provider)
	assert.Equal(suite.T(), "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(suite.T(), "test-key", cfg.LLM.APIKey)
	assert.Equal(suite.T(), 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(suite.T(), "debug", cfg.Log.Level)
	assert.False(suite.T(), cfg.Log.Pretty)
}

func (suite *ConfigTestSuite) TestDefaultModelFollowsProvider() {
	path := suite.writeConfig(`
llm:
  provider: gemini
  api_key: test-key
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "gemini-2.5-pro", cfg.LLM.Model)

	path = suite.writeConfig(`
llm:
  provider: openai
`)
	cfg, err = NewLoader().Load(path)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "gemma3", cfg.LLM.Model)
}

// replaceConfig swaps the config file in one rename so the watcher never
// observes a half-written file.
func (suite *ConfigTestSuite) replaceConfig(path, content string) {
	tmp := filepath.Join(suite.tempDir, "config.yaml.tmp")
	require.NoError(suite.T(), os.WriteFile(tmp, []byte(content), 0644))
	require.NoError(suite.T(), os.Rename(tmp, path))
}

// configChange is one call of the Watch callback.
type configChange struct {
	cfg *Config
	err error
}

func (suite *ConfigTestSuite) TestWatchReportsChanges() {
	path := suite.writeConfig(`
log:
  level: info
`)
	loader := NewLoader()
	_, err := loader.Load(path)
	require.NoError(suite.T(), err)

	changes := make(chan configChange, 64)
	loader.Watch(func(cfg *Config, err error) {
		select {
		case changes <- configChange{cfg, err}:
		default:
		}
	})

	suite.replaceConfig(path, `
log:
  level: debug
`)
	suite.waitForChange(changes, func(c configChange) bool {
		return c.err == nil && c.cfg != nil && c.cfg.Log.Level == "debug"
	})

	suite.replaceConfig(path, `
llm:
  provider: carrier-pigeon
log:
  level: warn
`)
	suite.waitForChange(changes, func(c configChange) bool {
		return errors.Is(c.err, ErrUnknownProvider)
	})
}

// waitForChange drains changes until one satisfies match. Editors and
// renames can fire more than one event per save.
func (suite *ConfigTestSuite) waitForChange(changes <-chan configChange, match func(configChange) bool) {
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if match(c) {
				return
			}
		case <-timeout:
			suite.T().Fatal("timed out waiting for config change")
		}
	}
}

func (suite *ConfigTestSuite) TestEnvironmentOverrides() {
	suite.T().Setenv("LLM_MODEL", "llama3")
	suite.T().Setenv("GEMINI_API_KEY", "from-env")
	suite.T().Setenv("SUPABASE_URL", "https://example.supabase.co")
	suite.T().Setenv("SUPABASE_KEY", "anon")

	cfg, err := NewLoader().Load("")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "llama3", cfg.LLM.Model)
	assert.Equal(suite.T(), "from-env", cfg.LLM.APIKey)
	assert.Equal(suite.T(), "https://example.supabase.co", cfg.Archive.URL)
	assert.Equal(suite.T(), "anon", cfg.Archive.Key)
}

func (suite *ConfigTestSuite) TestInvalidConfigFile() {
	path := suite.writeConfig("llm: [unclosed")
	_, err := NewLoader().Load(path)
	assert.Error(suite.T(), err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{LLM: LLMConfig{Provider: ProviderOpenAI, Model: "gemma3", Temperature: 0.6, Timeout: time.Second}}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.LLM.Provider = "anthropic-on-a-napkin"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownProvider)

	cfg = valid()
	cfg.LLM.Provider = ProviderGemini
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.LLM.Model = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.LLM.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.LLM.Temperature = 3
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Archive.Enabled = true
	assert.Error(t, cfg.Validate())
}
