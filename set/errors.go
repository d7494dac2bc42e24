package set

import "errors"

var (
	// ErrInvalidCapacity is returned by constructors when maxElts is negative.
	ErrInvalidCapacity = errors.New("set: negative capacity")

	// ErrFull is returned by Add when no empty or reusable slot remains.
	ErrFull = errors.New("set: no free slot")
)
