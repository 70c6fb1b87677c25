package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by taxamark.
const EnvPrefix = "TAXAMARK"

// Config holds the application configuration loaded from flags, environment
// variables, .env files and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Formatting
	Locale  string
	MaxLen  int
	BaseURL string
	WithURL bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// logLevelFlag records that LogLevel came from --log-level, which
	// outranks -v and -q.
	logLevelFlag bool
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"config":    "config",
	"verbose":   "verbose",
	"quiet":     "quiet",
	"no-color":  "no_color",
	"log-level": "log_level",
	"locale":    "locale",
	"max-len":   "max_len",
	"base-url":  "base_url",
	"with-url":  "with_url",
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (when flags is not nil)
//  2. Environment variables (TAXAMARK_*, plus LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT)
//  3. .env and .env.local files
//  4. Config file (--config, or .taxamark.yaml in the working or home directory)
//  5. Defaults
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"log_level", "log_format", "log_output"} {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(key), strings.ToUpper(key)); err != nil {
			return nil, errors.NewConfigError("env", "failed to bind "+key, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.NewConfigError("flags", "failed to bind --"+name, err)
				}
			}
		}
	}

	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".taxamark")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("file", "failed to read config file", err)
		}
	}

	config := &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		NoColor:    v.GetBool("no_color"),
		ConfigFile: v.ConfigFileUsed(),
		Locale:     v.GetString("locale"),
		MaxLen:     v.GetInt("max_len"),
		BaseURL:    v.GetString("base_url"),
		WithURL:    v.GetBool("with_url"),
		LogLevel:   v.GetString("log_level"),
		LogFormat:  v.GetString("log_format"),
		LogOutput:  v.GetString("log_output"),
	}
	if flags != nil {
		config.logLevelFlag = flags.Changed("log-level")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the formatting settings.
func (c *Config) Validate() error {
	if c.MaxLen < 0 {
		return errors.NewValidationError("max_len", c.MaxLen, "must not be negative")
	}
	if c.BaseURL == "" {
		return errors.NewValidationError("base_url", c.BaseURL, "cannot be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "")
	v.SetDefault("max_len", constants.DefaultMaxLen)
	v.SetDefault("base_url", constants.WWWBaseURL)
	v.SetDefault("with_url", true)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
