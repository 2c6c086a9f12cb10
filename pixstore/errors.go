package pixstore

import "errors"

// Error taxonomy. Failures wrap one of these sentinels with
// fmt.Errorf("...: %w", ...) so callers can branch with errors.Is.
var (
	// ErrNotFound reports a missing input path or an empty series.
	ErrNotFound = errors.New("not found")

	// ErrFormat reports a filename outside the naming convention, a
	// header with out-of-range fields, or a first image too small to
	// hold the header at all.
	ErrFormat = errors.New("invalid format")

	// ErrCorrupt reports a series holding fewer pixels than its header
	// declares, or broken image numbering.
	ErrCorrupt = errors.New("corrupt series")

	// ErrExists reports a decode destination that is already present.
	// Batch decode treats it as a skip, never an overwrite.
	ErrExists = errors.New("destination already exists")
)
