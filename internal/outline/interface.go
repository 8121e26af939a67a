// Package outline runs the two language model stages at the front of
// the pipeline: raw lecture text to a human-editable outline, and the
// (possibly hand-edited) outline to the strict structure the deck
// builder consumes.
package outline

import (
	"context"

	"github.com/yuyakanda/slidecast/pkg/lecture"
)

type Service interface {
	// Generate produces a readable outline meant for human review.
	Generate(ctx context.Context, lectureText string, detail lecture.DetailLevel) (string, error)
	// ToStructure converts an outline into the strict lecture structure.
	// The converter tolerates hand-edit format drift; shape is enforced
	// on the returned JSON only.
	ToStructure(ctx context.Context, outlineText string) (*lecture.Structure, error)
}
