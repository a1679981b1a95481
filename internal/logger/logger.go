package logger

import (
	"go.uber.org/zap"

	"github.com/YourNeshama/java-maze-game/internal/config"
)

// New builds a production logger for the production environment and a development one otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
