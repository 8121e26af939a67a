package llm

import "context"

// Client is the completion surface the pipeline stages call. Complete
// serves the outline stages; CompleteVision serves per-slide narration.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteVision(ctx context.Context, pngImage []byte, instruction string) (string, error)
}
