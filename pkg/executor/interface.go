package executor

import "context"

// Executor runs external commands (libreoffice, pdftoppm, ffmpeg) and
// returns their stdout. Failures carry the command's stderr so callers
// can surface the tool's own diagnostics.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
