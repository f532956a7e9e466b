package qnoise

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks a noise-model definition that can never be
	// sampled: a bad probability vector, a malformed matrix, or a
	// probability/matrix count mismatch. It is raised by the setters.
	ErrConfiguration = errors.New("qnoise: invalid configuration")

	// ErrConsistency marks a sampled outcome that has no matrix behind it.
	// The run should abort; there is no partial result.
	ErrConsistency = errors.New("qnoise: inconsistent channel state")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

func consistencyErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConsistency, fmt.Sprintf(format, args...))
}
