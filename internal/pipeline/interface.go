package pipeline

import "context"

// Processor defines the interface for lecture processing operations
type Processor interface {
	Process(ctx context.Context, lecturePath string) error
}
