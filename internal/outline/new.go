package outline

import (
	"github.com/yuyakanda/slidecast/internal/llm"
	"github.com/yuyakanda/slidecast/internal/logger"
)

type implService struct {
	llm    llm.Client
	logger logger.Logger
}

func New(client llm.Client, log logger.Logger) Service {
	return &implService{
		llm:    client,
		logger: log,
	}
}
