package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/YourNeshama/java-maze-game/internal/domain/entities"
)

// QuestionService gives callers access to the question bank and builds new questions.
type QuestionService struct {
	repository QuestionRepository
	logger     *zap.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(repository QuestionRepository, logger *zap.Logger) *QuestionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionService{repository: repository, logger: logger}
}

// CreateQuestion validates and builds a question of the given difficulty.
// Validation failures are logged and returned; the caller decides what to do with them.
func (s *QuestionService) CreateQuestion(
	difficulty entities.Difficulty,
	text string,
	options []string,
	correctIndex int,
	explanation string,
) (*entities.Question, error) {
	q, err := entities.NewQuestion(text, options, correctIndex, explanation, difficulty)
	if err != nil {
		s.logger.Error("failed to create question",
			zap.String("difficulty", string(difficulty)),
			zap.Int("options", len(options)),
			zap.Int("correct_index", correctIndex),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create %s question: %w", difficulty, err)
	}
	return q, nil
}

// GetRandom returns a random question. An empty difficulty means any difficulty.
func (s *QuestionService) GetRandom(difficulty entities.Difficulty) (*entities.Question, error) {
	if difficulty == "" {
		return s.repository.GetRandom()
	}

	q, err := s.repository.GetRandomByDifficulty(difficulty)
	if err != nil {
		s.logger.Warn("no question available",
			zap.String("difficulty", string(difficulty)),
			zap.Error(err),
		)
		return nil, err
	}
	return q, nil
}

// GetByDifficulty returns every question of the given difficulty.
func (s *QuestionService) GetByDifficulty(difficulty entities.Difficulty) []*entities.Question {
	return s.repository.GetByDifficulty(difficulty)
}

// Stats logs and returns the number of questions per difficulty.
func (s *QuestionService) Stats() map[entities.Difficulty]int {
	counts := s.repository.CountByDifficulty()
	s.logger.Debug("question bank loaded",
		zap.Int("easy", counts[entities.DifficultyEasy]),
		zap.Int("medium", counts[entities.DifficultyMedium]),
		zap.Int("hard", counts[entities.DifficultyHard]),
	)
	return counts
}
