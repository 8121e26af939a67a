package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// evenCrop trims at most one row and one column so libx264 always gets
// even dimensions.
const evenCrop = "crop=trunc(iw/2)*2:trunc(ih/2)*2"

// buildClip renders one slide clip from a still image and a narration
// WAV whose length was probed beforehand.
func (g *implGenerator) buildClip(ctx context.Context, imagePath, audioPath string, duration float64, outputPath string) error {
	// ffmpeg arguments
	// -loop 1: repeat the still image
	// -t: clip duration (the narration length)
	// -r: frame rate, 1 fps is plenty for stills
	// -shortest: stop with the shorter stream
	args := []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-i", audioPath,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-t", formatSeconds(duration),
		"-pix_fmt", "yuv420p",
		"-vf", evenCrop,
		"-r", strconv.Itoa(g.cfg.Video.FrameRate),
		"-shortest",
		outputPath,
	}
	if _, err := g.executor.Execute(ctx, g.cfg.Tools.FFmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg slide clip: %w", err)
	}
	return nil
}

// buildSilentClip renders a fixed length clip with a generated silent
// mono track, for slides without narration.
func (g *implGenerator) buildSilentClip(ctx context.Context, imagePath, outputPath string) error {
	// -f lavfi -i anullsrc: silence as the audio input
	args := []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-f", "lavfi",
		"-i", "anullsrc=channel_layout=mono:sample_rate=48000",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-t", formatSeconds(g.cfg.Video.SilentSeconds),
		"-pix_fmt", "yuv420p",
		"-vf", evenCrop,
		"-r", strconv.Itoa(g.cfg.Video.FrameRate),
		"-shortest",
		outputPath,
	}
	if _, err := g.executor.Execute(ctx, g.cfg.Tools.FFmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg silent clip: %w", err)
	}
	return nil
}

// concatClips joins the per-slide clips without re-encoding.
func (g *implGenerator) concatClips(ctx context.Context, clipPaths []string, listDir, outputPath string) error {
	var b strings.Builder
	for _, clip := range clipPaths {
		abs, err := filepath.Abs(clip)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", clip, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
	}
	listPath := filepath.Join(listDir, "clips.txt")
	if err := os.WriteFile(listPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	// -safe 0: allow absolute paths in the list file
	// -c copy: stream copy, the clips share one encoding
	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outputPath,
	}
	if _, err := g.executor.Execute(ctx, g.cfg.Tools.FFmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg concat: %w", err)
	}
	return nil
}

func formatSeconds(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
