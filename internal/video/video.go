package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuyakanda/slidecast/internal/pptx"
)

func (g *implGenerator) Generate(ctx context.Context, pptxPath, zipPath, outputPath string, progress ProgressFunc) (int, error) {
	report := reporter(progress)

	report("Extracting speaker notes", 0, 1)
	narrations, err := extractNarrations(pptxPath)
	if err != nil {
		return 0, err
	}

	tempDir, err := g.makeTempDir()
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(tempDir)

	report("Extracting slide images", 0, 1)
	images, err := extractImages(zipPath, tempDir)
	if err != nil {
		return 0, err
	}

	// Both checks run before any synthesis or encoding starts.
	totalSlides := len(images)
	if totalSlides == 0 {
		return 0, fmt.Errorf("no slide images in %s (expected スライド1.jpeg, スライド2.jpeg, ...)", zipPath)
	}
	if len(narrations) != totalSlides {
		return 0, fmt.Errorf("slide count mismatch: deck has %d, archive has %d", len(narrations), totalSlides)
	}

	totalSteps := totalSlides + 1
	clips := make([]string, 0, totalSlides)
	for i, image := range images {
		slideNum := i + 1
		clip := filepath.Join(tempDir, fmt.Sprintf("slide_%03d.mp4", slideNum))

		if narration := narrations[i]; narration != "" {
			report(fmt.Sprintf("Slide %d/%d: generating audio", slideNum, totalSlides), slideNum, totalSteps)
			g.logger.Info(ctx, "Synthesizing narration for slide %d/%d", slideNum, totalSlides)

			audio := filepath.Join(tempDir, fmt.Sprintf("slide_%03d.wav", slideNum))
			if err := g.tts.Synthesize(ctx, narration, audio); err != nil {
				return 0, fmt.Errorf("narration audio for slide %d: %w", slideNum, err)
			}
			duration, err := g.audioDuration(ctx, audio)
			if err != nil {
				return 0, err
			}
			if err := g.buildClip(ctx, image, audio, duration, clip); err != nil {
				return 0, err
			}
		} else {
			report(fmt.Sprintf("Slide %d/%d: creating silent clip", slideNum, totalSlides), slideNum, totalSteps)
			g.logger.Info(ctx, "Slide %d/%d has no notes, using %.1fs of silence",
				slideNum, totalSlides, g.cfg.Video.SilentSeconds)

			if err := g.buildSilentClip(ctx, image, clip); err != nil {
				return 0, err
			}
		}
		clips = append(clips, clip)
	}

	report("Combining clips", totalSlides+1, totalSteps)
	if err := g.concatClips(ctx, clips, tempDir, outputPath); err != nil {
		return 0, err
	}

	report("Done", totalSteps, totalSteps)
	g.logger.Info(ctx, "Video ready: %d slides -> %s", totalSlides, outputPath)
	return totalSlides, nil
}

// extractNarrations reads the trimmed speaker notes per slide. An empty
// entry means the slide plays silent.
func extractNarrations(pptxPath string) ([]string, error) {
	p, err := pptx.Open(pptxPath)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}

	narrations := make([]string, p.SlideCount())
	for i := range narrations {
		text, err := p.NotesText(i)
		if err != nil {
			return nil, fmt.Errorf("read notes of slide %d: %w", i+1, err)
		}
		narrations[i] = strings.TrimSpace(text)
	}
	return narrations, nil
}

// makeTempDir creates a per-run work directory, under paths.temp when
// configured, under the system temp directory otherwise.
func (g *implGenerator) makeTempDir() (string, error) {
	if root := g.cfg.Paths.Temp; root != "" {
		if err := os.MkdirAll(root, 0755); err != nil {
			return "", fmt.Errorf("create temp root: %w", err)
		}
	}
	dir, err := os.MkdirTemp(g.cfg.Paths.Temp, "slidecast-video-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	return dir, nil
}

func reporter(progress ProgressFunc) ProgressFunc {
	if progress == nil {
		return func(string, int, int) {}
	}
	return progress
}
