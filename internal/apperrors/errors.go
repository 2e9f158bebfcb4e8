// Package apperrors defines sentinel errors for the failure classes the
// pipeline distinguishes. Callers wrap these with %w and test with errors.Is,
// so a storage failure deep in the cache manager is still recognizable at the
// workflow boundary.
package apperrors

import "errors"

var (
	// ErrInput indicates a bad or missing video locator or unreadable source media.
	ErrInput = errors.New("invalid input")

	// ErrStorage indicates an object store read or write failure.
	ErrStorage = errors.New("storage failure")

	// ErrTranscriptionTimeout indicates the recognizer exceeded its time bound.
	ErrTranscriptionTimeout = errors.New("transcription timeout")

	// ErrCapability indicates a lookup, search, generation, or send capability failure.
	ErrCapability = errors.New("capability failure")

	// ErrAggregation indicates the merged document violated an invariant.
	ErrAggregation = errors.New("aggregation failure")
)

// IsInput reports whether any error in err's chain is ErrInput.
func IsInput(err error) bool {
	return errors.Is(err, ErrInput)
}

// IsStorage reports whether any error in err's chain is ErrStorage.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsTranscriptionTimeout reports whether any error in err's chain is ErrTranscriptionTimeout.
func IsTranscriptionTimeout(err error) bool {
	return errors.Is(err, ErrTranscriptionTimeout)
}

// IsCapability reports whether any error in err's chain is ErrCapability.
func IsCapability(err error) bool {
	return errors.Is(err, ErrCapability)
}

// IsAggregation reports whether any error in err's chain is ErrAggregation.
func IsAggregation(err error) bool {
	return errors.Is(err, ErrAggregation)
}
