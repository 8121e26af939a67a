package llm

import (
	"fmt"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/yuyakanda/slidecast/internal/config"
	"github.com/yuyakanda/slidecast/internal/logger"
)

type implClient struct {
	client          openai.Client
	logger          logger.Logger
	model           string
	visionModel     string
	maxTokens       int64
	visionMaxTokens int64
}

// New creates a completion client. The API key comes from
// OPENAI_API_KEY; a missing key fails here, before any call is made.
func New(cfg config.LLMConfig, log logger.Logger) (Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	return &implClient{
		client:          openai.NewClient(option.WithAPIKey(apiKey)),
		logger:          log,
		model:           cfg.Model,
		visionModel:     cfg.VisionModel,
		maxTokens:       cfg.MaxTokens,
		visionMaxTokens: cfg.VisionMaxTokens,
	}, nil
}
