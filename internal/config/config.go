// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config handles client-, server- and storage-related constants and parameters.
type Config struct {
	APIBaseURL      string        `yaml:"api_base_url" json:"api_base_url" env:"API_BASE_URL" env-default:"http://localhost:8081"`
	RequestTimeout  time.Duration `yaml:"request_timeout" json:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"5s"`
	StoriesLimit    int           `yaml:"stories_limit" json:"stories_limit" env:"STORIES_LIMIT" env-default:"25"`
	ServerAddress   string        `yaml:"server_address" json:"server_address" env:"SERVER_ADDRESS" env-default:":8080"`
	DevAPIAddress   string        `yaml:"dev_api_address" json:"dev_api_address" env:"DEV_API_ADDRESS" env-default:":8081"`
	DatabaseDSN     string        `yaml:"database_dsn" json:"database_dsn" env:"DATABASE_DSN"`
	UserKey         string        `yaml:"user_key" json:"user_key" env:"USER_KEY" env-default:"jds__63h3_7ds"`
	SessionFilePath string        `yaml:"session_file_path" json:"session_file_path" env:"SESSION_FILE_PATH" env-default:"session.json"`
	TrustedSubnet   string        `yaml:"trusted_subnet" json:"trusted_subnet" env:"TRUSTED_SUBNET"`
	LogLevel        string        `yaml:"log_level" json:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

// NewDefaultConfiguration sets up an empty configuration to be filled by Parse.
func NewDefaultConfiguration() *Config {
	return &Config{}
}

// Parse reads a configuration file (if given), environment variables and command line arguments in that order,
// each source overriding the previous one.
func (c *Config) Parse() error {
	// a missing .env file is not an error
	_ = godotenv.Load()
	return c.parse(os.Args[1:])
}

// parse does the actual reading, command line arguments are passed explicitly to keep it testable.
func (c *Config) parse(args []string) error {
	var flags Config
	var configPath string
	fs := flag.NewFlagSet("storyfeed", flag.ContinueOnError)
	fs.StringVar(&flags.ServerAddress, "a", "", "UI dispatcher address")
	fs.StringVar(&flags.APIBaseURL, "u", "", "Remote story API base URL")
	fs.StringVar(&flags.DevAPIAddress, "p", "", "Development story API address")
	fs.StringVar(&flags.DatabaseDSN, "d", "", "Development story API database DSN")
	fs.StringVar(&flags.SessionFilePath, "f", "", "Session file path")
	fs.StringVar(&flags.TrustedSubnet, "t", "", "Trusted subnet in CIDR notation")
	fs.StringVar(&flags.LogLevel, "l", "", "Log level")
	fs.DurationVar(&flags.RequestTimeout, "r", 0, "Remote request timeout")
	fs.StringVar(&configPath, "c", os.Getenv("CONFIG"), "Configuration file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, c); err != nil {
			return err
		}
	} else {
		if err := cleanenv.ReadEnv(c); err != nil {
			return err
		}
	}

	// only explicitly passed flags take precedence
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			c.ServerAddress = flags.ServerAddress
		case "u":
			c.APIBaseURL = flags.APIBaseURL
		case "p":
			c.DevAPIAddress = flags.DevAPIAddress
		case "d":
			c.DatabaseDSN = flags.DatabaseDSN
		case "f":
			c.SessionFilePath = flags.SessionFilePath
		case "t":
			c.TrustedSubnet = flags.TrustedSubnet
		case "l":
			c.LogLevel = flags.LogLevel
		case "r":
			c.RequestTimeout = flags.RequestTimeout
		}
	})
	return nil
}
