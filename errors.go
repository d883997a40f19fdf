// Copyright 2020 Aleksandr Demakin. All rights reserved.

package packedchar

import (
	"errors"
	"strconv"
)

var (
	// ErrOutOfRange is matched by every error caused by a number that does not fit a U22.
	ErrOutOfRange = errors.New("value out of range")
	// ErrNotInteger is returned when a number with a fractional part is converted to a U22.
	ErrNotInteger = errors.New("value is not an integer")
	// ErrInvalidWord is returned for a 32-bit word that no PackedChar constructor produces.
	ErrInvalidWord = errors.New("invalid packed char word")
)

// FromUint32Error is returned when a uint32 exceeds MaxU22.
type FromUint32Error struct {
	// Value is the number that failed to be converted.
	Value uint32
}

func (e *FromUint32Error) Error() string {
	return strconv.FormatUint(uint64(e.Value), 10) + " exceeds " + strconv.Itoa(MaxU22)
}

// Is makes errors.Is(err, ErrOutOfRange) report true.
func (e *FromUint32Error) Is(target error) bool {
	return target == ErrOutOfRange
}
