package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/internal/printer"
	"github.com/yuyakanda/slidecast/internal/tts"
	"github.com/yuyakanda/slidecast/internal/video"
	"github.com/yuyakanda/slidecast/pkg/executor"
)

var (
	videoInput  string
	videoImages string
	videoOutput string
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Render a narrated video from a deck and slide images",
	Long: `Render a narrated .mp4 from a deck with speaker notes and a zip of
slide images.

The images come from PowerPoint's JPEG export of the deck, zipped;
slide numbers are read from the file names. Every slide with notes is
voiced by TTS; slides without notes become short silent clips. The
archive must contain exactly one image per slide.

Examples:
  slidecast video --input deck_notes.pptx --images slides.zip
  slidecast video --input deck_notes.pptx --images slides.zip --out lecture.mp4`,
	RunE: runVideo,
}

func init() {
	videoCmd.Flags().StringVarP(&videoInput, "input", "i", "", "Deck with speaker notes (required)")
	videoCmd.Flags().StringVarP(&videoImages, "images", "z", "", "Zip archive of exported slide images (required)")
	videoCmd.Flags().StringVarP(&videoOutput, "out", "o", "", "Output video path (default: <input>.mp4)")
	videoCmd.MarkFlagRequired("input")
	videoCmd.MarkFlagRequired("images")
	rootCmd.AddCommand(videoCmd)
}

func runVideo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)
	speaker, err := tts.New(cfg.TTS, log)
	if err != nil {
		return err
	}
	gen := video.New(cfg, speaker, executor.New(), log)

	outPath := videoOutput
	if outPath == "" {
		outPath = withSuffix(videoInput, ".mp4")
	}

	count, err := gen.Generate(ctx, videoInput, videoImages, outPath, printProgress)
	if err != nil {
		return err
	}

	printer.Success("Video written to %s (%d slides)", outPath, count)
	return nil
}
