//go:build marisa_noassert

// Package diag, optimized-build variant: precondition violations are not
// logged in this build; callers still return their ErrBound errors.
package diag

import "github.com/charmbracelet/log"

// Enable is a no-op in the marisa_noassert build.
func Enable(level log.Level) {}

// Precondition is a no-op in the marisa_noassert build.
func Precondition(op string, index, bound int) {}
