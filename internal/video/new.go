package video

import (
	"github.com/yuyakanda/slidecast/internal/config"
	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/internal/tts"
	"github.com/yuyakanda/slidecast/pkg/executor"
)

type implGenerator struct {
	cfg      *config.Config
	tts      tts.Speaker
	executor executor.Executor
	logger   logger.Logger
}

// New creates a video generator.
func New(cfg *config.Config, speaker tts.Speaker, exec executor.Executor, log logger.Logger) Generator {
	return &implGenerator{
		cfg:      cfg,
		tts:      speaker,
		executor: exec,
		logger:   log,
	}
}
