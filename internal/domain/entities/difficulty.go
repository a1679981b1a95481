package entities

import (
	"fmt"
	"strings"
)

// Difficulty classifies a question and selects the pool a lookup draws from.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns every difficulty from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty normalizes a case-insensitive label such as "EASY" or " Hard "
// into its canonical Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	label := strings.ToLower(strings.TrimSpace(s))
	if label == "" {
		return "", fmt.Errorf("%w: difficulty cannot be empty", ErrInvalidArgument)
	}

	switch d := Difficulty(label); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidArgument, s)
	}
}

// IsValid reports whether d is one of the canonical difficulties.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (d Difficulty) String() string {
	return string(d)
}
