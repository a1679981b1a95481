package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/YourNeshama/java-maze-game/internal/config"
	"github.com/YourNeshama/java-maze-game/internal/delivery/console"
	"github.com/YourNeshama/java-maze-game/internal/logger"
	"github.com/YourNeshama/java-maze-game/internal/repository"
	"github.com/YourNeshama/java-maze-game/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	difficulty, err := cfg.Quiz.QuizDifficulty()
	if err != nil {
		lg.Fatal("invalid difficulty", zap.Error(err))
	}

	seed := cfg.Quiz.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize the question bank once and hand it to the service.
	questionRepo := repository.NewBuiltInQuestionRepository(rand.New(rand.NewSource(seed)))
	questionService := service.NewQuestionService(questionRepo, lg)
	questionService.Stats()

	printer := console.NewPrinter(os.Stdout, cfg.UI.NoColor)

	for round := 1; round <= cfg.Quiz.Rounds; round++ {
		q, err := questionService.GetRandom(difficulty)
		if err != nil {
			lg.Fatal("failed to draw question", zap.Int("round", round), zap.Error(err))
		}

		if err := printer.PrintQuestion(q); err != nil {
			lg.Fatal("failed to print question", zap.Error(err))
		}
		if err := printer.PrintAnswer(q); err != nil {
			lg.Fatal("failed to print answer", zap.Error(err))
		}
		if round < cfg.Quiz.Rounds {
			_, _ = os.Stdout.WriteString("\n")
		}
	}
}
