package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	TTS         TTSConfig         `yaml:"tts"`
	Deck        DeckConfig        `yaml:"deck"`
	Tools       ToolsConfig       `yaml:"tools"`
	Video       VideoConfig       `yaml:"video"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type LLMConfig struct {
	Model           string `yaml:"model"`
	VisionModel     string `yaml:"vision_model"`
	MaxTokens       int64  `yaml:"max_tokens"`
	VisionMaxTokens int64  `yaml:"vision_max_tokens"`
}

type TTSConfig struct {
	Model string `yaml:"model"`
	Voice string `yaml:"voice"`
}

type DeckConfig struct {
	Template string `yaml:"template"`
}

type ToolsConfig struct {
	LibreOffice string `yaml:"libreoffice"`
	PDFToPPM    string `yaml:"pdftoppm"`
	FFmpeg      string `yaml:"ffmpeg"`
	FFprobe     string `yaml:"ffprobe"`
	RenderDPI   int    `yaml:"render_dpi"`
}

type VideoConfig struct {
	FrameRate     int     `yaml:"frame_rate"`
	SilentSeconds float64 `yaml:"silent_seconds"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file, validates it and fills in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error")
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}
	if c.LLM.VisionMaxTokens < 0 {
		return fmt.Errorf("llm.vision_max_tokens must be positive")
	}
	if c.Tools.RenderDPI < 0 {
		return fmt.Errorf("tools.render_dpi must be positive")
	}
	if c.Video.FrameRate < 0 {
		return fmt.Errorf("video.frame_rate must be positive")
	}
	if c.Video.SilentSeconds < 0 {
		return fmt.Errorf("video.silent_seconds must be positive")
	}

	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o"
	}
	if c.LLM.VisionModel == "" {
		c.LLM.VisionModel = "gpt-4o"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 20000
	}
	if c.LLM.VisionMaxTokens == 0 {
		c.LLM.VisionMaxTokens = 4000
	}
	if c.TTS.Model == "" {
		c.TTS.Model = "gemini-2.5-flash-preview-tts"
	}
	if c.TTS.Voice == "" {
		c.TTS.Voice = "Kore"
	}
	if c.Deck.Template == "" {
		c.Deck.Template = "template.pptx"
	}
	if c.Tools.LibreOffice == "" {
		c.Tools.LibreOffice = "libreoffice"
	}
	if c.Tools.PDFToPPM == "" {
		c.Tools.PDFToPPM = "pdftoppm"
	}
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = "ffprobe"
	}
	if c.Tools.RenderDPI == 0 {
		// 2x the 72dpi PDF point grid, matching the slide renderer.
		c.Tools.RenderDPI = 144
	}
	if c.Video.FrameRate == 0 {
		c.Video.FrameRate = 1
	}
	if c.Video.SilentSeconds == 0 {
		c.Video.SilentSeconds = 3.0
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	// Paths.Temp stays empty by default: stages then use the system
	// temp directory.
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
