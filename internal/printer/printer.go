// Package printer provides consistent, colored terminal output for the
// slidecast commands.
package printer

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// Success prints a green checkmark message for completed operations.
func Success(format string, a ...interface{}) {
	green.Printf("✓ "+format+"\n", a...)
}

// Info prints a plain informational message.
func Info(format string, a ...interface{}) {
	fmt.Printf(format+"\n", a...)
}

// Step prints a cyan arrow message for an operation in progress.
func Step(format string, a ...interface{}) {
	cyan.Printf("→ "+format+"\n", a...)
}

// Progress prints one line of in-run progress, in the
// "[current/total] label" form the pipeline callbacks use.
func Progress(label string, current, total int) {
	cyan.Printf("[%d/%d] %s\n", current, total, label)
}

// Warning prints a yellow warning message for non-fatal conditions.
func Warning(format string, a ...interface{}) {
	yellow.Printf("⚠ "+format+"\n", a...)
}

// Error prints a red error message to stderr.
func Error(format string, a ...interface{}) {
	red.Fprintf(os.Stderr, "✗ "+format+"\n", a...)
}
