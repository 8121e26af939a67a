package pipeline

import (
	"github.com/yuyakanda/slidecast/internal/config"
	"github.com/yuyakanda/slidecast/internal/deck"
	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/internal/outline"
)

type implProcessor struct {
	cfg     *config.Config
	outline outline.Service
	deck    deck.Builder
	logger  logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, svc outline.Service, builder deck.Builder, log logger.Logger) Processor {
	return &implProcessor{
		cfg:     cfg,
		outline: svc,
		deck:    builder,
		logger:  log,
	}
}
