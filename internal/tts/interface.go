package tts

import "context"

// Speaker converts narration text into a spoken-audio WAV file on disk.
type Speaker interface {
	Synthesize(ctx context.Context, text, outputPath string) error
}
