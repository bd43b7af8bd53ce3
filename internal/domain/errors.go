package domain

import "errors"

var (
	// ErrInvalidStop reports a stop whose size is not a positive finite number.
	ErrInvalidStop = errors.New("invalid stop")
	// ErrDuplicateLocation reports two candidates sharing a coordinate.
	ErrDuplicateLocation = errors.New("duplicate stop location")
	// ErrInvalidCapacity reports a non-positive or non-finite vehicle capacity.
	ErrInvalidCapacity = errors.New("invalid vehicle capacity")
)
