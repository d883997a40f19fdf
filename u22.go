// Copyright 2020 Aleksandr Demakin. All rights reserved.

package packedchar

import (
	"fmt"
	"strconv"
)

const (
	u22Bits = 22

	// MaxU22 is the largest value that can be stored in a U22.
	MaxU22 = 1<<u22Bits - 1
)

// U22 is an unsigned 22-bit integer.
// It is stored in a uint32, whose value never exceeds MaxU22.
// The zero value is 0.
type U22 struct {
	n uint32
}

// FromUint32 returns a U22 for given uint32 number.
// Returns a *FromUint32Error if n exceeds MaxU22.
func FromUint32(n uint32) (U22, error) {
	if n > MaxU22 {
		return U22{}, &FromUint32Error{Value: n}
	}
	return U22{n: n}, nil
}

// MustFromUint32 is like FromUint32, but panics if n exceeds MaxU22.
func MustFromUint32(n uint32) U22 {
	u, err := FromUint32(n)
	if err != nil {
		panic(err)
	}
	return u
}

// u22Unchecked returns a U22 without checking the range.
// n must not exceed MaxU22, otherwise the value breaks the invariant of U22,
// and PackedChar values built from it will decode to wrong contents.
// The only caller is PackedChar.Contents, where the bound follows from the masks.
func u22Unchecked(n uint32) U22 {
	return U22{n: n}
}

// Uint32 returns the value as a uint32 number.
func (u U22) Uint32() uint32 {
	return u.n
}

// Int returns the value as an int.
func (u U22) Int() int {
	return int(u.n)
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (u U22) Cmp(other U22) int {
	return uint32Cmp(u.n, other.n)
}

// String returns a decimal representation of the value.
func (u U22) String() string {
	return strconv.FormatUint(uint64(u.n), 10)
}

// GoString returns debug string representation.
func (u U22) GoString() string {
	return fmt.Sprintf("U22(%d)", u.n)
}

func uint32Cmp(a, b uint32) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
