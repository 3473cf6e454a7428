package shopbook

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SHOPBOOK_ENV", "development")
	t.Setenv("SHOPBOOK_DATA_DIR", "/tmp/shopbook-test")
	t.Setenv("SHOPBOOK_CURRENCY", "USD")
	t.Setenv("SHOPBOOK_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "/tmp/shopbook-test", cfg.DataDir)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SHOPBOOK_ENV", "")
	t.Setenv("SHOPBOOK_DATA_DIR", "")
	t.Setenv("SHOPBOOK_CURRENCY", "")
	t.Setenv("SHOPBOOK_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "BDT", cfg.Currency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "parseLevel(%q)", tt.in)
	}
}
