package shopbook

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config groups the application settings, read via Viper from environment
// variables and optionally a config file. Env vars take priority.
type Config struct {
	Env      string // development or production
	DataDir  string // directory holding the ledger snapshot
	Currency string // ISO 4217 code used for every monetary value
	LogLevel string // trace, debug, info, warn, error
}

// LoadConfig reads the configuration. Expected variables: SHOPBOOK_ENV,
// SHOPBOOK_DATA_DIR, SHOPBOOK_CURRENCY, SHOPBOOK_LOG_LEVEL.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Optional config file next to the data.
	v.SetConfigName("shopbook")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/shopbook")
	_ = v.ReadInConfig() // the file is optional

	v.SetEnvPrefix("SHOPBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("env", "production")
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("currency", DefaultCurrency)
	v.SetDefault("log_level", "info")

	return &Config{
		Env:      v.GetString("env"),
		DataDir:  v.GetString("data_dir"),
		Currency: v.GetString("currency"),
		LogLevel: v.GetString("log_level"),
	}, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".shopbook")
}

// NewLogger creates the structured logger: human-readable console output in
// development, JSON elsewhere.
func NewLogger(cfg *Config) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return zerolog.New(w).Level(parseLevel(cfg.LogLevel)).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
