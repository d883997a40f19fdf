// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package packedchar implements PackedChar, a 32-bit value holding
// either a Unicode character, or a 22-bit unsigned integer.
//
// The variant is not stored separately. Characters occupy 0..0xD7FF and 0xE000..0x10FFFF,
// and the surrogate range 0xD800..0xDFFF is never used by them. Bits 11..15 are
// the same for the whole surrogate range:
//   1101100000000000
//   1101111111111111
//
// A 22-bit integer is split into two 11-bit chunks. The left chunk is stored in
// the leading 11 bits, which a character never uses, the right chunk is stored in
// the trailing 11 bits, and the surrogate bits are set in between:
//   31         21     16    11          0
//   ___________|_____|_____|___________
//   lllllllllll00000 11011 rrrrrrrrrrr
//   left chunk|unused|mask |right chunk
//
// With the left chunk masked out, such a word is always a surrogate, so it can't be
// confused with a character.
//
// The word itself is the serialized form of a PackedChar, and its layout never changes.
package packedchar

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

const (
	surrogateLow  = 0xD800
	surrogateHigh = 0xDFFF
	surrogateMask = surrogateLow & surrogateHigh

	maxUint32 = 1<<32 - 1

	// bits.LeadingZeros32(utf8.MaxRune)
	leading     = 11
	leadingMask = ^(maxUint32 >> leading) & maxUint32
	// bits.TrailingZeros32(surrogateLow)
	trailing     = 11
	trailingMask = ^(maxUint32 << trailing) & maxUint32
	charMask     = ^leadingMask & maxUint32
	// bits.LeadingZeros32(MaxU22)
	maxU22Leading = 10

	// bits 11..20 of an encoded U22.
	tagMask = charMask &^ trailingMask

	wordSize = 4
)

// PackedChar is either a character, or a U22 stored in a single uint32.
// The zero value holds the '\x00' character.
// PackedChar values are comparable, and two values are equal iff their contents are equal.
type PackedChar struct {
	w uint32
}

// FromRune returns a PackedChar holding a character.
// If r is not a valid Unicode scalar value, utf8.RuneError is stored instead.
func FromRune(r rune) PackedChar {
	return PackedChar{w: uint32(validRune(r))}
}

// FromU22 returns a PackedChar holding a 22-bit integer.
func FromU22(u U22) PackedChar {
	n := u.Uint32()
	left := (n << maxU22Leading) & leadingMask
	right := n & trailingMask
	return PackedChar{w: left | right | surrogateMask}
}

// TryFromUint32 returns a PackedChar holding n as a U22.
// n is never treated as a character.
// Returns a *FromUint32Error if n exceeds MaxU22.
func TryFromUint32(n uint32) (PackedChar, error) {
	u, err := FromUint32(n)
	if err != nil {
		return PackedChar{}, err
	}
	return FromU22(u), nil
}

// FromWord returns a PackedChar for a raw word, as returned by Word.
// Returns ErrInvalidWord if the word can't be produced by FromRune or FromU22.
func FromWord(w uint32) (PackedChar, error) {
	if !validWord(w) {
		return PackedChar{}, fmt.Errorf("%#08x: %w", w, ErrInvalidWord)
	}
	return PackedChar{w: w}, nil
}

func validWord(w uint32) bool {
	if w&tagMask == surrogateMask {
		return true
	}
	return w <= utf8.MaxRune && !isSurrogate(w)
}

func validRune(r rune) rune {
	if !utf8.ValidRune(r) {
		return utf8.RuneError
	}
	return r
}

func isSurrogate(c uint32) bool {
	return surrogateLow <= c && c <= surrogateHigh
}

// Contents decodes the value.
func (p PackedChar) Contents() Contents {
	c := p.w & charMask
	if !isSurrogate(c) {
		return Contents{kind: KindChar, r: rune(c)}
	}
	i := p.w &^ surrogateMask
	right := i & trailingMask
	left := i & leadingMask
	return Contents{kind: KindU22, u: u22Unchecked(right | left>>maxU22Leading)}
}

// Kind returns the variant stored in p.
func (p PackedChar) Kind() Kind {
	if isSurrogate(p.w & charMask) {
		return KindU22
	}
	return KindChar
}

// IsChar returns true, if p holds a character.
func (p PackedChar) IsChar() bool {
	return p.Kind() == KindChar
}

// IsU22 returns true, if p holds a U22.
func (p PackedChar) IsU22() bool {
	return p.Kind() == KindU22
}

// Rune returns the character and true, if p holds a character.
func (p PackedChar) Rune() (rune, bool) {
	return p.Contents().Rune()
}

// U22 returns the integer and true, if p holds a U22.
func (p PackedChar) U22() (U22, bool) {
	return p.Contents().U22()
}

// Word returns the raw 32-bit representation.
func (p PackedChar) Word() uint32 {
	return p.w
}

// Cmp compares raw words of two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (p PackedChar) Cmp(other PackedChar) int {
	return uint32Cmp(p.w, other.w)
}

// String returns the string representation of the contents.
func (p PackedChar) String() string {
	return p.Contents().String()
}

// GoString returns debug string representation of the contents.
func (p PackedChar) GoString() string {
	return p.Contents().GoString()
}

// MarshalBinary returns the word as 4 big-endian bytes.
func (p PackedChar) MarshalBinary() ([]byte, error) {
	data := make([]byte, wordSize)
	binary.BigEndian.PutUint32(data, p.w)
	return data, nil
}

// UnmarshalBinary reads a word written by MarshalBinary.
func (p *PackedChar) UnmarshalBinary(data []byte) error {
	if len(data) != wordSize {
		return fmt.Errorf("bad data length %d, expected %d", len(data), wordSize)
	}
	value, err := FromWord(binary.BigEndian.Uint32(data))
	if err != nil {
		return err
	}
	*p = value
	return nil
}
