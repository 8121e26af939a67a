package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuyakanda/slidecast/internal/config"
	"github.com/yuyakanda/slidecast/internal/printer"
)

var (
	version string
	commit  string
	date    string
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slidecast",
	Short: "Slidecast - turn lecture text into a narrated slide video",
	Long: `Slidecast turns free-form lecture text into a narrated slide video
through four stages, each usable on its own:

  outline   lecture text -> editable outline text
  slides    outline text -> structure JSON + .pptx deck
  notes     deck -> deck with generated speaker notes
  video     deck with notes + slide images zip -> .mp4

A fifth mode, watch, monitors an inbox directory and runs the outline
and deck stages for every dropped lecture file.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing; failed commands
	// are rendered once, in color, by the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		printer.Error("%v", err)
		return err
	}
	return nil
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file")
}

// loadConfig reads the configured YAML file. A missing file is not an
// error: the tool then runs on defaults, so one-shot commands work
// without any setup.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		cfg = &config.Config{}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, err
}

// printProgress adapts the pipeline progress callbacks to the printer.
func printProgress(step string, current, total int) {
	printer.Progress(step, current, total)
}

// withSuffix swaps the extension of path for suffix, so default output
// paths land next to their inputs.
func withSuffix(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}
