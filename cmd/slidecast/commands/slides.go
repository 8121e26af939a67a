package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuyakanda/slidecast/internal/deck"
	"github.com/yuyakanda/slidecast/internal/llm"
	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/internal/outline"
	"github.com/yuyakanda/slidecast/internal/printer"
)

var (
	slidesInput     string
	slidesOutput    string
	slidesStructure string
	slidesTemplate  string
)

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Build a slide deck from an outline",
	Long: `Convert an outline into a structured lecture and build a .pptx deck
from it.

The intermediate structure is saved as JSON next to the deck so it can
be inspected or edited; the deck is assembled from the configured
template (title, content and closing layouts).

Examples:
  # Deck and structure JSON next to the outline
  slidecast slides --input lecture_outline.txt

  # Explicit paths and template
  slidecast slides --input outline.txt --out deck.pptx --template corporate.pptx`,
	RunE: runSlides,
}

func init() {
	slidesCmd.Flags().StringVarP(&slidesInput, "input", "i", "", "Outline text file (required)")
	slidesCmd.Flags().StringVarP(&slidesOutput, "out", "o", "", "Output deck path (default: <input>.pptx)")
	slidesCmd.Flags().StringVar(&slidesStructure, "structure", "", "Structure JSON path (default: <out>.json)")
	slidesCmd.Flags().StringVarP(&slidesTemplate, "template", "t", "", "Template .pptx (default: from config)")
	slidesCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(slidesCmd)
}

func runSlides(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := os.ReadFile(slidesInput)
	if err != nil {
		return fmt.Errorf("read outline: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	client, err := llm.New(cfg.LLM, log)
	if err != nil {
		return err
	}
	svc := outline.New(client, log)

	printer.Step("Converting outline to a lecture structure")
	st, err := svc.ToStructure(ctx, string(text))
	if err != nil {
		return err
	}

	outPath := slidesOutput
	if outPath == "" {
		outPath = withSuffix(slidesInput, ".pptx")
	}
	structurePath := slidesStructure
	if structurePath == "" {
		structurePath = withSuffix(outPath, ".json")
	}
	if err := st.Save(structurePath); err != nil {
		return err
	}
	printer.Success("Structure written to %s", structurePath)

	templatePath := slidesTemplate
	if templatePath == "" {
		templatePath = cfg.Deck.Template
	}

	printer.Step("Building deck from %s", templatePath)
	summary, err := deck.New(log).Build(ctx, st, templatePath, outPath)
	if err != nil {
		return err
	}

	printer.Success("Deck written to %s", outPath)
	printer.Info("Title: %s", summary.Title)
	for _, a := range summary.PerAgenda {
		printer.Info("  %d. %s: %d slides", a.Index, a.Title, a.Slides)
	}
	printer.Info("Total slides: %d", summary.TotalSlides)
	return nil
}
