package config

import (
	"errors"
	"os"
	"testing"

	"github.com/YourNeshama/java-maze-game/internal/domain/entities"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// TestLoadDefaults verifies defaults apply when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "")
	t.Setenv("QUIZ_DIFFICULTY", "")
	t.Setenv("QUIZ_ROUNDS", "")
	t.Setenv("QUIZ_SEED", "")
	t.Setenv("NO_COLOR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Quiz.Rounds != 3 || cfg.Quiz.Seed != 0 || cfg.UI.NoColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

// TestLoadFromEnv verifies environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("QUIZ_DIFFICULTY", "HARD")
	t.Setenv("QUIZ_ROUNDS", "5")
	t.Setenv("QUIZ_SEED", "42")
	t.Setenv("NO_COLOR", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "production" || cfg.Quiz.Rounds != 5 || cfg.Quiz.Seed != 42 || !cfg.UI.NoColor {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	d, err := cfg.Quiz.QuizDifficulty()
	if err != nil || d != entities.DifficultyHard {
		t.Fatalf("expected hard difficulty, got %q, %v", d, err)
	}
}

// TestValidate verifies bad difficulty and round counts are rejected.
func TestValidate(t *testing.T) {
	cfg := Config{Quiz: Quiz{Difficulty: "expert", Rounds: 1}}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}

	cfg = Config{Quiz: Quiz{Rounds: 0}}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidRounds) {
		t.Fatalf("expected ErrInvalidRounds, got %v", err)
	}

	cfg = Config{Quiz: Quiz{Difficulty: " medium ", Rounds: 2}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
