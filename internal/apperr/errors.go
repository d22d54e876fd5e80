// Package apperr holds the sentinel errors shared across the service
// surface. The conversion core uses its own typed *calendar.RangeError;
// these sentinels classify failures arriving from untyped boundaries.
package apperr

import "errors"

var (
	// ErrUnknownCalendar marks a calendar tag outside the fixed catalog,
	// arriving from an untyped boundary (HTTP, MCP, CLI flags).
	ErrUnknownCalendar = errors.New("unknown calendar")

	// ErrBadDate marks text that does not parse as a canonical date.
	ErrBadDate = errors.New("bad date")
)
