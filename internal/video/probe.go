package video

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// audioDuration asks ffprobe for a WAV file's length in seconds.
func (g *implGenerator) audioDuration(ctx context.Context, audioPath string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	}
	out, err := g.executor.Execute(ctx, g.cfg.Tools.FFprobe, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	trimmed := strings.TrimSpace(out)
	duration, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", trimmed, err)
	}
	return duration, nil
}
