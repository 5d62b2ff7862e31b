//go:build !marisa_noassert

// Package diag surfaces out-of-bounds precondition violations (§4.7) as
// structured log lines before the caller returns its ErrBound error.
// Builds tagged marisa_noassert (see diag_noassert.go) compile the
// logging out entirely.
package diag

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the package-level sink. It is silent by default (a level
// above fatal, i.e. nothing is ever emitted) so embedders that never call
// Enable pay no logging cost. Call Enable to wire it to a destination.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Level:           log.Level(100), // above fatal: silent until Enable
})

// Enable routes precondition-violation warnings to the given level
// (typically log.WarnLevel or log.DebugLevel).
func Enable(level log.Level) {
	Logger.SetLevel(level)
}

// Precondition logs a structured warning describing a violated
// precondition immediately before the caller returns its error.
func Precondition(op string, index, bound int) {
	Logger.Warn("precondition violated", "op", op, "index", index, "bound", bound)
}
