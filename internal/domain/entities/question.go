// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidArgument is wrapped by every validation failure when building a Question.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidIndexText is returned by CorrectOptionText when the answer index does not
// point at an option.
const InvalidIndexText = "Invalid answer index"

// MinOptions is the smallest number of options a question may offer.
const MinOptions = 2

// Question is a single multiple choice quiz item shown to the player in the maze.
// It is immutable once built by NewQuestion.
type Question struct {
	text         string     // prompt shown to the player
	options      []string   // answer choices in display order
	correctIndex int        // index of the right answer in options
	explanation  string     // shown after the player answers
	difficulty   Difficulty // pool the question belongs to
}

// NewQuestion validates the input and builds a Question.
// Text and explanation are trimmed, the difficulty label is normalized
// and options are copied so the caller may reuse its slice.
func NewQuestion(
	text string,
	options []string,
	correctIndex int,
	explanation string,
	difficulty Difficulty,
) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: question text cannot be empty", ErrInvalidArgument)
	}

	if len(options) < MinOptions {
		return nil, fmt.Errorf("%w: question must have at least %d options, got %d",
			ErrInvalidArgument, MinOptions, len(options))
	}

	if correctIndex < 0 || correctIndex >= len(options) {
		return nil, fmt.Errorf("%w: correct answer index %d out of range [0, %d)",
			ErrInvalidArgument, correctIndex, len(options))
	}

	explanation = strings.TrimSpace(explanation)
	if explanation == "" {
		return nil, fmt.Errorf("%w: explanation cannot be empty", ErrInvalidArgument)
	}

	d, err := ParseDifficulty(string(difficulty))
	if err != nil {
		return nil, err
	}

	return &Question{
		text:         text,
		options:      slices.Clone(options),
		correctIndex: correctIndex,
		explanation:  explanation,
		difficulty:   d,
	}, nil
}

// NewEasyQuestion builds an easy question.
func NewEasyQuestion(text string, options []string, correctIndex int, explanation string) (*Question, error) {
	return NewQuestion(text, options, correctIndex, explanation, DifficultyEasy)
}

// NewMediumQuestion builds a medium question.
func NewMediumQuestion(text string, options []string, correctIndex int, explanation string) (*Question, error) {
	return NewQuestion(text, options, correctIndex, explanation, DifficultyMedium)
}

// NewHardQuestion builds a hard question.
func NewHardQuestion(text string, options []string, correctIndex int, explanation string) (*Question, error) {
	return NewQuestion(text, options, correctIndex, explanation, DifficultyHard)
}

func (q *Question) Text() string { return q.text }
func (q *Question) CorrectIndex() int { return q.correctIndex }
func (q *Question) Explanation() string { return q.explanation }
func (q *Question) Difficulty() Difficulty { return q.difficulty }
func (q *Question) NumOptions() int { return len(q.options) }

// Options returns a copy of the answer choices.
func (q *Question) Options() []string {
	return slices.Clone(q.options)
}

// IsCorrect reports whether answerIndex is the right answer.
// Out of range indexes are simply wrong.
func (q *Question) IsCorrect(answerIndex int) bool {
	if answerIndex < 0 || answerIndex >= len(q.options) {
		return false
	}
	return answerIndex == q.correctIndex
}

// CorrectOptionText returns the text of the right answer.
func (q *Question) CorrectOptionText() string {
	if q.correctIndex < 0 || q.correctIndex >= len(q.options) {
		return InvalidIndexText
	}
	return q.options[q.correctIndex]
}

// IsValid re-checks the construction invariants. A zero Question is not valid.
func (q *Question) IsValid() bool {
	if q == nil {
		return false
	}

	switch {
	case strings.TrimSpace(q.text) == "":
		return false
	case len(q.options) < MinOptions:
		return false
	case q.correctIndex < 0 || q.correctIndex >= len(q.options):
		return false
	case strings.TrimSpace(q.explanation) == "":
		return false
	}

	return q.difficulty.IsValid()
}
