package tts

import (
	"fmt"
	"os"

	"github.com/yuyakanda/slidecast/internal/config"
	"github.com/yuyakanda/slidecast/internal/logger"
)

type implSpeaker struct {
	apiKey string
	logger logger.Logger
	model  string
	voice  string
}

// New creates a Speaker backed by Gemini TTS. The API key comes from
// GEMINI_API_KEY or GOOGLE_API_KEY; a missing key fails here, before
// any call is made.
func New(cfg config.TTSConfig, log logger.Logger) (Speaker, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY or GOOGLE_API_KEY is not set")
	}

	return &implSpeaker{
		apiKey: apiKey,
		logger: log,
		model:  cfg.Model,
		voice:  cfg.Voice,
	}, nil
}
