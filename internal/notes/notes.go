package notes

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yuyakanda/slidecast/internal/pptx"
)

func (g *implGenerator) FromDeck(ctx context.Context, pptxPath, outputPath string, progress ProgressFunc) ([]string, error) {
	report := reporter(progress)

	tempDir, err := g.makeTempDir()
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tempDir)

	report("Converting deck to PDF", 0, 4)
	pdfPath, err := g.convertToPDF(ctx, pptxPath, tempDir)
	if err != nil {
		return nil, err
	}

	report("Rendering slide images", 1, 4)
	pages, err := g.renderPages(ctx, pdfPath, tempDir)
	if err != nil {
		return nil, err
	}

	report("Generating narration", 2, 4)
	narrations := g.generateNarrations(ctx, pages)

	report("Updating deck", 3, 4)
	if err := g.applyNotes(pptxPath, narrations, outputPath); err != nil {
		return nil, err
	}

	report("Done", 4, 4)
	return narrations, nil
}

func (g *implGenerator) FromPDF(ctx context.Context, pptxPath, pdfPath, outputPath string, progress ProgressFunc) ([]string, error) {
	report := reporter(progress)

	tempDir, err := g.makeTempDir()
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tempDir)

	report("Rendering slide images", 0, 3)
	pages, err := g.renderPages(ctx, pdfPath, tempDir)
	if err != nil {
		return nil, err
	}

	report("Generating narration", 1, 3)
	narrations := g.generateNarrations(ctx, pages)

	report("Updating deck", 2, 3)
	if err := g.applyNotes(pptxPath, narrations, outputPath); err != nil {
		return nil, err
	}

	report("Done", 3, 3)
	return narrations, nil
}

// generateNarrations narrates every rendered page. A failed call fills
// that slide with a placeholder instead of aborting the run.
func (g *implGenerator) generateNarrations(ctx context.Context, pages []string) []string {
	narrations := make([]string, 0, len(pages))
	for i, page := range pages {
		g.logger.Info(ctx, "Generating narration for slide %d/%d", i+1, len(pages))

		narration, err := g.narrate(ctx, page, i+1)
		if err != nil {
			g.logger.Error(ctx, "Narration for slide %d failed: %v", i+1, err)
			narration = fmt.Sprintf(narrationFailedText, i+1)
		}
		narrations = append(narrations, narration)
	}
	return narrations
}

func (g *implGenerator) narrate(ctx context.Context, pagePath string, slideNumber int) (string, error) {
	image, err := os.ReadFile(pagePath)
	if err != nil {
		return "", fmt.Errorf("read page image: %w", err)
	}

	reply, err := g.llm.CompleteVision(ctx, image, fmt.Sprintf(narrationPromptTemplate, slideNumber))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// applyNotes writes narration into the deck's speaker notes, appending
// below notes already present. Narrations beyond the slide count are
// dropped.
func (g *implGenerator) applyNotes(pptxPath string, narrations []string, outputPath string) error {
	p, err := pptx.Open(pptxPath)
	if err != nil {
		return fmt.Errorf("open deck: %w", err)
	}

	for i, narration := range narrations {
		if i >= p.SlideCount() {
			break
		}
		existing, err := p.NotesText(i)
		if err != nil {
			return fmt.Errorf("read notes of slide %d: %w", i+1, err)
		}
		if strings.TrimSpace(existing) != "" {
			narration = existing + "\n\n" + narration
		}
		if err := p.SetNotesText(i, narration); err != nil {
			return fmt.Errorf("write notes of slide %d: %w", i+1, err)
		}
	}

	return p.Save(outputPath)
}

// makeTempDir creates a per-run work directory, under paths.temp when
// configured, under the system temp directory otherwise.
func (g *implGenerator) makeTempDir() (string, error) {
	if root := g.cfg.Paths.Temp; root != "" {
		if err := os.MkdirAll(root, 0755); err != nil {
			return "", fmt.Errorf("create temp root: %w", err)
		}
	}
	dir, err := os.MkdirTemp(g.cfg.Paths.Temp, "slidecast-notes-*")
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
