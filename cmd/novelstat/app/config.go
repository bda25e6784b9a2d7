package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/novelstat/pkg/constants"
	"github.com/agentstation/novelstat/pkg/errors"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "NOVELSTAT"

// configName is the config file searched for in $HOME and the working directory.
const configName = ".novelstat"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Project configuration
	ProjectPath     string
	Interval        time.Duration
	CompleteWords   int
	InProgressWords int
	WordTolerance   int
	Extensions      []string
	Components      []string // "path=label"

	// Logging configuration. LogLevel is the explicit --log-level flag;
	// EnvLogLevel comes from LOG_LEVEL and only applies when no flag does.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (NOVELSTAT_*)
// 3. .env files
// 4. Config file (configFile, or ~/.novelstat.yaml / ./.novelstat.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", fmt.Sprintf("failed to read %s", configFile), err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(configName)

		// A missing config file is fine; a broken one is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "failed to read config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		ProjectPath:     v.GetString("path"),
		Interval:        v.GetDuration("interval"),
		CompleteWords:   v.GetInt("complete_words"),
		InProgressWords: v.GetInt("in_progress_words"),
		WordTolerance:   v.GetInt("word_tolerance"),
		Extensions:      v.GetStringSlice("extensions"),
		Components:      v.GetStringSlice("components"),

		EnvLogLevel: getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("path", constants.DefaultProjectPath)
	v.SetDefault("interval", constants.DefaultRefreshInterval)
	v.SetDefault("complete_words", constants.CompleteWords)
	v.SetDefault("in_progress_words", constants.InProgressWords)
	v.SetDefault("word_tolerance", constants.WordTolerance)
	v.SetDefault("extensions", constants.DefaultExtensions)
}

// Validate checks values that flags and files cannot constrain themselves.
func (c *Config) Validate() error {
	switch {
	case c.InProgressWords < 0 || c.CompleteWords < c.InProgressWords:
		return errors.NewConfigError("thresholds",
			fmt.Sprintf("need 0 <= in_progress_words (%d) <= complete_words (%d)", c.InProgressWords, c.CompleteWords), nil)
	case c.WordTolerance < 0:
		return errors.NewConfigError("word_tolerance", "must not be negative", nil)
	case c.Interval < constants.MinRefreshInterval:
		return errors.NewConfigError("interval", fmt.Sprintf("must be at least %s", constants.MinRefreshInterval), nil)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars. Empty strings
// mean the flag was not given.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, path string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if path != "" {
		c.ProjectPath = path
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
