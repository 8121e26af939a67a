package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuyakanda/slidecast/internal/llm"
	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/internal/outline"
	"github.com/yuyakanda/slidecast/internal/printer"
	"github.com/yuyakanda/slidecast/pkg/lecture"
)

var (
	outlineInput  string
	outlineOutput string
	outlineDetail string
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Generate an outline from lecture text",
	Long: `Generate a slide outline from free-form lecture text.

The outline is plain text, meant to be reviewed and edited by hand
before it is turned into a deck with "slidecast slides".

Detail Levels:
  standard - 3-5 agenda items, 1-3 slides each, compact slide bodies
  detailed - 4-7 agenda items, 2-5 slides each, fuller explanations

Examples:
  # Standard outline, written next to the input
  slidecast outline --input lecture.txt

  # Detailed outline to an explicit path
  slidecast outline --input lecture.txt --detail detailed --out outline.txt`,
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineInput, "input", "i", "", "Lecture text file (required)")
	outlineCmd.Flags().StringVarP(&outlineOutput, "out", "o", "", "Output outline path (default: <input>_outline.txt)")
	outlineCmd.Flags().StringVarP(&outlineDetail, "detail", "d", "standard", "Outline detail level (standard or detailed)")
	outlineCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	detail, err := lecture.ParseDetailLevel(outlineDetail)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(outlineInput)
	if err != nil {
		return fmt.Errorf("read lecture text: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	client, err := llm.New(cfg.LLM, log)
	if err != nil {
		return err
	}
	svc := outline.New(client, log)

	printer.Step("Generating %s outline from %s", detail, outlineInput)
	result, err := svc.Generate(ctx, string(text), detail)
	if err != nil {
		return err
	}

	outPath := outlineOutput
	if outPath == "" {
		outPath = withSuffix(outlineInput, "_outline.txt")
	}
	if err := os.WriteFile(outPath, []byte(result), 0644); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}

	printer.Success("Outline written to %s", outPath)
	printer.Info("Review and edit it, then run: slidecast slides --input %s", outPath)
	return nil
}
