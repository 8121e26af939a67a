package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuyakanda/slidecast/pkg/lecture"
)

// Process orchestrates the outline, structure and deck stages for one
// dropped lecture file, then archives the input. Artifacts land in the
// configured output directory under the lecture's base name.
func (p *implProcessor) Process(ctx context.Context, lecturePath string) error {
	startTime := time.Now()
	base := strings.TrimSuffix(filepath.Base(lecturePath), filepath.Ext(lecturePath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting lecture processing: %s", lecturePath)
	p.logger.Info(ctx, "========================================")

	text, err := os.ReadFile(lecturePath)
	if err != nil {
		return fmt.Errorf("read lecture text: %w", err)
	}

	// Step 1: Generate the outline
	outlineText, err := p.outline.Generate(ctx, string(text), lecture.DetailStandard)
	if err != nil {
		return fmt.Errorf("generate outline: %w", err)
	}
	outlinePath := filepath.Join(p.cfg.Paths.Output, base+"_outline.txt")
	if err := os.WriteFile(outlinePath, []byte(outlineText), 0644); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}

	// Step 2: Convert to a structure and persist it
	st, err := p.outline.ToStructure(ctx, outlineText)
	if err != nil {
		return fmt.Errorf("convert outline: %w", err)
	}
	structurePath := filepath.Join(p.cfg.Paths.Output, base+".json")
	if err := st.Save(structurePath); err != nil {
		return err
	}

	// Step 3: Build the deck
	deckPath := filepath.Join(p.cfg.Paths.Output, base+".pptx")
	summary, err := p.deck.Build(ctx, st, p.cfg.Deck.Template, deckPath)
	if err != nil {
		return fmt.Errorf("build deck: %w", err)
	}

	// Step 4: Move the original lecture to the archived folder
	if err := p.moveToArchived(ctx, lecturePath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output outline: %s", outlinePath)
	p.logger.Info(ctx, "Output structure: %s", structurePath)
	p.logger.Info(ctx, "Output deck: %s (%d slides)", deckPath, summary.TotalSlides)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// moveToArchived moves a processed lecture file out of the watched folder
func (p *implProcessor) moveToArchived(ctx context.Context, lecturePath string) error {
	filename := filepath.Base(lecturePath)
	destPath := filepath.Join(p.cfg.Paths.Archived, filename)

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", lecturePath, destPath)

	if err := os.Rename(lecturePath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
