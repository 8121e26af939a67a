package commands

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuyakanda/slidecast/internal/llm"
	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/internal/notes"
	"github.com/yuyakanda/slidecast/internal/printer"
	"github.com/yuyakanda/slidecast/pkg/executor"
)

var (
	notesInput  string
	notesOutput string
	notesPDF    string
	notesScript string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Generate speaker notes for a deck",
	Long: `Generate narration speaker notes for every slide of a deck.

Each slide is rendered to an image and narrated by a vision model; the
narrations are written into the deck's speaker notes. Slides that
already carry notes keep them, with the narration appended after a
blank line. With --pdf the given PDF export is used directly instead of
converting the deck through LibreOffice.

Examples:
  # Convert the deck itself and narrate it
  slidecast notes --input deck.pptx

  # Use an existing PDF export, and also write a .docx narration script
  slidecast notes --input deck.pptx --pdf deck.pdf --script script.docx`,
	RunE: runNotes,
}

func init() {
	notesCmd.Flags().StringVarP(&notesInput, "input", "i", "", "Deck to narrate (required)")
	notesCmd.Flags().StringVarP(&notesOutput, "out", "o", "", "Output deck path (default: <input>_notes.pptx)")
	notesCmd.Flags().StringVar(&notesPDF, "pdf", "", "PDF export of the deck (skips LibreOffice conversion)")
	notesCmd.Flags().StringVar(&notesScript, "script", "", "Also write the narration script as a .docx handout")
	notesCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)
	client, err := llm.New(cfg.LLM, log)
	if err != nil {
		return err
	}
	gen := notes.New(cfg, client, executor.New(), log)

	outPath := notesOutput
	if outPath == "" {
		outPath = withSuffix(notesInput, "_notes.pptx")
	}

	var narrations []string
	if notesPDF != "" {
		narrations, err = gen.FromPDF(ctx, notesInput, notesPDF, outPath, printProgress)
	} else {
		narrations, err = gen.FromDeck(ctx, notesInput, outPath, printProgress)
	}
	if err != nil {
		return err
	}

	printer.Success("Deck with notes written to %s", outPath)

	if notesScript != "" {
		title := strings.TrimSuffix(filepath.Base(notesInput), filepath.Ext(notesInput))
		if err := notes.WriteScript(title, narrations, notesScript); err != nil {
			return err
		}
		printer.Success("Narration script written to %s", notesScript)
	}
	return nil
}
