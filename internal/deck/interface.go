// Package deck assembles a presentation from a lecture structure and a
// template. Assembly is deterministic: title slide, agenda slide, one
// content slide per body text in agenda order, closing slide.
package deck

import (
	"context"

	"github.com/yuyakanda/slidecast/pkg/lecture"
)

type Builder interface {
	Build(ctx context.Context, st *lecture.Structure, templatePath, outputPath string) (*Summary, error)
}

// Summary is what the build emitted, for console reporting.
type Summary struct {
	Title       string
	TotalSlides int
	PerAgenda   []AgendaCount
}

// AgendaCount is the content slide count for one agenda item. Index is
// 1-based, matching the numbering on the slides themselves.
type AgendaCount struct {
	Index  int
	Title  string
	Slides int
}
