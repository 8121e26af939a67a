// Package notes generates spoken narration for every slide of a deck
// and stores it in the deck's speaker notes. Slides are narrated from
// rendered page images, so charts and diagrams are described too, not
// just placeholder text.
package notes

import "context"

// ProgressFunc reports pipeline phases to the caller, console style:
// step label, current phase, total phases.
type ProgressFunc func(step string, current, total int)

type Generator interface {
	// FromDeck renders the deck itself to page images, then narrates.
	FromDeck(ctx context.Context, pptxPath, outputPath string, progress ProgressFunc) ([]string, error)
	// FromPDF narrates from an already exported PDF, skipping the
	// LibreOffice conversion.
	FromPDF(ctx context.Context, pptxPath, pdfPath, outputPath string, progress ProgressFunc) ([]string, error)
}
