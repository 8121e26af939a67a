// Package video turns a narrated deck and a slide image archive into a
// single lecture video: text-to-speech per slide, one still clip per
// slide, then a stream copy concat.
package video

import "context"

// ProgressFunc reports pipeline steps to the caller, console style:
// step label, current step, total steps.
type ProgressFunc func(step string, current, total int)

type Generator interface {
	// Generate builds the video and returns the slide count processed.
	Generate(ctx context.Context, pptxPath, zipPath, outputPath string, progress ProgressFunc) (int, error)
}
