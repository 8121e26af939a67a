package notes

import (
	"github.com/yuyakanda/slidecast/internal/config"
	"github.com/yuyakanda/slidecast/internal/llm"
	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/pkg/executor"
)

type implGenerator struct {
	cfg      *config.Config
	llm      llm.Client
	executor executor.Executor
	logger   logger.Logger
}

// New creates a narration generator.
func New(cfg *config.Config, client llm.Client, exec executor.Executor, log logger.Logger) Generator {
	return &implGenerator{
		cfg:      cfg,
		llm:      client,
		executor: exec,
		logger:   log,
	}
}
