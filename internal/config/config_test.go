package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit values kept",
			config: Config{
				LLM:     LLMConfig{Model: "gpt-4o-mini", MaxTokens: 8000},
				Logging: LoggingConfig{Level: "debug"},
			},
			wantErr: false,
		},
		{
			name: "bad logging level",
			config: Config{
				Logging: LoggingConfig{Level: "verbose"},
			},
			wantErr: true,
		},
		{
			name: "negative max tokens",
			config: Config{
				LLM: LLMConfig{MaxTokens: -1},
			},
			wantErr: true,
		},
		{
			name: "negative silent duration",
			config: Config{
				Video: VideoConfig{SilentSeconds: -3},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.MaxTokens != 20000 {
		t.Errorf("MaxTokens default = %d, want 20000", cfg.LLM.MaxTokens)
	}
	if cfg.TTS.Model != "gemini-2.5-flash-preview-tts" {
		t.Errorf("TTS model default = %q", cfg.TTS.Model)
	}
	if cfg.TTS.Voice != "Kore" {
		t.Errorf("TTS voice default = %q", cfg.TTS.Voice)
	}
	if cfg.Tools.RenderDPI != 144 {
		t.Errorf("RenderDPI default = %d, want 144", cfg.Tools.RenderDPI)
	}
	if cfg.Video.SilentSeconds != 3.0 {
		t.Errorf("SilentSeconds default = %v, want 3.0", cfg.Video.SilentSeconds)
	}
	if cfg.Video.FrameRate != 1 {
		t.Errorf("FrameRate default = %d, want 1", cfg.Video.FrameRate)
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent default = %d, want 1", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
llm:
  model: "gpt-4o-mini"
  vision_model: "gpt-4o"
  max_tokens: 16000

tts:
  voice: "Puck"

deck:
  template: "templates/lecture.pptx"

tools:
  libreoffice: "soffice"
  render_dpi: 200

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("Model = %v, want gpt-4o-mini", cfg.LLM.Model)
	}
	if cfg.TTS.Voice != "Puck" {
		t.Errorf("Voice = %v, want Puck", cfg.TTS.Voice)
	}
	if cfg.Deck.Template != "templates/lecture.pptx" {
		t.Errorf("Template = %v", cfg.Deck.Template)
	}
	if cfg.Tools.LibreOffice != "soffice" {
		t.Errorf("LibreOffice = %v, want soffice", cfg.Tools.LibreOffice)
	}
	// Unset sections still get defaults.
	if cfg.TTS.Model != "gemini-2.5-flash-preview-tts" {
		t.Errorf("TTS model default not applied: %v", cfg.TTS.Model)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" {
		t.Errorf("FFmpeg default not applied: %v", cfg.Tools.FFmpeg)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
