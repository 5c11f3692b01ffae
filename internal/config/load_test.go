package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load reads process environment variables, so these tests do not run in
// parallel.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("SLIDEGEN_DATABASE_URL", "postgres://localhost/slidegen_test")
	t.Setenv("SLIDEGEN_LLM_GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 4000, cfg.LLM.MaxOutputTokens)
	assert.Empty(t, cfg.Unsplash.AccessKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SLIDEGEN_SERVER_PORT", "9090")
	t.Setenv("SLIDEGEN_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SLIDEGEN_DATABASE_URL", "postgres://localhost/slidegen_test")
	t.Setenv("SLIDEGEN_LLM_GEMINI_API_KEY", "test-key")
	t.Setenv("SLIDEGEN_LLM_MODEL_NAME", "gemini-2.5-pro")
	t.Setenv("SLIDEGEN_UNSPLASH_ACCESS_KEY", "unsplash-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost/slidegen_test", cfg.Database.URL)
	assert.Equal(t, "test-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, "unsplash-key", cfg.Unsplash.AccessKey)
}

func TestLoadMissingRequiredValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing database URL",
			env: map[string]string{
				"SLIDEGEN_LLM_GEMINI_API_KEY": "test-key",
			},
		},
		{
			name: "missing Gemini API key",
			env: map[string]string{
				"SLIDEGEN_DATABASE_URL": "postgres://localhost/slidegen_test",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv("SLIDEGEN_DATABASE_URL", "postgres://localhost/slidegen_test")
	t.Setenv("SLIDEGEN_LLM_GEMINI_API_KEY", "test-key")
	t.Setenv("SLIDEGEN_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
}
