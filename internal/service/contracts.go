package service

import (
	"github.com/YourNeshama/java-maze-game/internal/domain/entities"
)

type QuestionRepository interface {
	GetRandom() (*entities.Question, error)
	GetRandomByDifficulty(difficulty entities.Difficulty) (*entities.Question, error)
	GetByDifficulty(difficulty entities.Difficulty) []*entities.Question
	CountByDifficulty() map[entities.Difficulty]int
}
