package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/YourNeshama/java-maze-game/internal/domain/entities"
)

var (
	ErrInvalidDifficulty = errors.New("invalid quiz difficulty")
	ErrInvalidRounds     = errors.New("quiz rounds must be positive")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env  string `mapstructure:"env"`  // current application environment (local, dev, production etc)
	Quiz Quiz   `mapstructure:"quiz"` // question selection section
	UI   UI     `mapstructure:"ui"`   // console output section
}

// Quiz controls which questions the demo draws.
type Quiz struct {
	Difficulty string `mapstructure:"difficulty"` // difficulty to draw from, empty for any
	Rounds     int    `mapstructure:"rounds"`     // number of questions to show
	Seed       int64  `mapstructure:"seed"`       // random seed, 0 for a time-based seed
}

// UI contains console rendering options.
type UI struct {
	NoColor bool `mapstructure:"no_color"` // disable colored headings
}

// QuizDifficulty returns the normalized difficulty, or an empty one for any difficulty.
func (q Quiz) QuizDifficulty() (entities.Difficulty, error) {
	if strings.TrimSpace(q.Difficulty) == "" {
		return "", nil
	}
	d, err := entities.ParseDifficulty(q.Difficulty)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDifficulty, err)
	}
	return d, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values from .env never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("quiz.difficulty", "")
	v.SetDefault("quiz.rounds", 3)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("ui.no_color", false)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("quiz.difficulty", "QUIZ_DIFFICULTY")
	_ = v.BindEnv("quiz.rounds", "QUIZ_ROUNDS")
	_ = v.BindEnv("quiz.seed", "QUIZ_SEED")
	_ = v.BindEnv("ui.no_color", "NO_COLOR")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be expressed as defaults.
func (c *Config) Validate() error {
	if _, err := c.Quiz.QuizDifficulty(); err != nil {
		return err
	}
	if c.Quiz.Rounds < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRounds, c.Quiz.Rounds)
	}
	return nil
}
