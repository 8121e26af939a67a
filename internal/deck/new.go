package deck

import (
	"github.com/yuyakanda/slidecast/internal/logger"
)

type implBuilder struct {
	logger logger.Logger
}

func New(log logger.Logger) Builder {
	return &implBuilder{
		logger: log,
	}
}
