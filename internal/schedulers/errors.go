package schedulers

import "errors"

var (
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
	ErrInvalidQuantum   = errors.New("invalid time quantum")
	ErrInvalidProcess   = errors.New("invalid process")
	ErrEmptyWorkload    = errors.New("empty workload")
)

// IsValidationError reports whether err was caused by bad caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAlgorithm) ||
		errors.Is(err, ErrInvalidQuantum) ||
		errors.Is(err, ErrInvalidProcess) ||
		errors.Is(err, ErrEmptyWorkload)
}
