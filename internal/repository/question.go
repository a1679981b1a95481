package repository

import (
	"errors"
	"math/rand"
	"slices"
	"time"

	"github.com/YourNeshama/java-maze-game/internal/domain/entities"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionRepository is the in-memory question bank.
// It is read-only after construction. The random source is not safe for
// concurrent use, so a repository must not be shared between goroutines.
type QuestionRepository struct {
	questions []*entities.Question
	rng       *rand.Rand
}

// NewQuestionRepository creates a repository over a copy of questions.
// If rng is nil, a time-seeded source is used.
func NewQuestionRepository(questions []*entities.Question, rng *rand.Rand) *QuestionRepository {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &QuestionRepository{
		questions: slices.Clone(questions),
		rng:       rng,
	}
}

// NewBuiltInQuestionRepository creates a repository holding the built-in sample questions.
func NewBuiltInQuestionRepository(rng *rand.Rand) *QuestionRepository {
	return NewQuestionRepository(BuiltInQuestions(), rng)
}

// GetRandom retrieves a random question of any difficulty.
func (r *QuestionRepository) GetRandom() (*entities.Question, error) {
	if len(r.questions) == 0 {
		return nil, ErrQuestionNotFound
	}

	idx := r.rng.Intn(len(r.questions))
	return r.questions[idx], nil
}

// GetRandomByDifficulty retrieves a random question of the given difficulty.
// It returns ErrQuestionNotFound if the bank has none.
func (r *QuestionRepository) GetRandomByDifficulty(difficulty entities.Difficulty) (*entities.Question, error) {
	pool := r.GetByDifficulty(difficulty)
	if len(pool) == 0 {
		return nil, ErrQuestionNotFound
	}

	idx := r.rng.Intn(len(pool))
	return pool[idx], nil
}

// GetByDifficulty returns all questions of the given difficulty in catalog order.
// Unknown labels match nothing.
func (r *QuestionRepository) GetByDifficulty(difficulty entities.Difficulty) []*entities.Question {
	d, err := entities.ParseDifficulty(string(difficulty))
	if err != nil {
		return nil
	}

	out := make([]*entities.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if q.Difficulty() == d {
			out = append(out, q)
		}
	}
	return out
}

// GetAll retrieves all questions in catalog order.
func (r *QuestionRepository) GetAll() []*entities.Question {
	return slices.Clone(r.questions)
}

// Count returns the total number of questions.
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

// CountByDifficulty returns the number of questions per difficulty.
// Every difficulty is present in the result, even when its count is zero.
func (r *QuestionRepository) CountByDifficulty() map[entities.Difficulty]int {
	counts := make(map[entities.Difficulty]int, len(entities.AllDifficulties()))
	for _, d := range entities.AllDifficulties() {
		counts[d] = 0
	}
	for _, q := range r.questions {
		counts[q.Difficulty()]++
	}
	return counts
}
