package tts

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Synthesize sends the text to Gemini TTS and writes the spoken audio
// to outputPath as a WAV file.
func (s *implSpeaker) Synthesize(ctx context.Context, text, outputPath string) error {
	s.logger.Debug(ctx, "TTS request: model=%s, voice=%s, text=%d chars", s.model, s.voice, len(text))

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	speechConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: s.voice,
				},
			},
		},
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(text), speechConfig)
	if err != nil {
		return fmt.Errorf("generate speech: %w", err)
	}

	pcm, err := audioData(result)
	if err != nil {
		return err
	}

	if err := writeWAV(outputPath, pcm); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}

	return nil
}

// audioData pulls the raw PCM bytes out of a TTS response.
func audioData(result *genai.GenerateContentResponse) ([]byte, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}

	return nil, fmt.Errorf("response contains no audio data")
}
