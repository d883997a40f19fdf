// Copyright 2020 Aleksandr Demakin. All rights reserved.

package packedchar

import "fmt"

// Kind tells which of the two variants a PackedChar holds.
type Kind uint8

const (
	// KindChar is a Unicode scalar value.
	KindChar Kind = iota
	// KindU22 is a 22-bit unsigned integer.
	KindU22
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindU22:
		return "U22"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Contents is a decoded PackedChar: either a character, or a U22.
// Values can only be made with CharContents and U22Contents,
// so there are exactly two variants. Contents values are comparable.
type Contents struct {
	kind Kind
	r    rune
	u    U22
}

// CharContents returns contents holding a character.
// Invalid runes are replaced with utf8.RuneError, see FromRune.
func CharContents(r rune) Contents {
	return Contents{kind: KindChar, r: validRune(r)}
}

// U22Contents returns contents holding a 22-bit integer.
func U22Contents(u U22) Contents {
	return Contents{kind: KindU22, u: u}
}

// Kind returns the variant.
func (c Contents) Kind() Kind {
	return c.kind
}

// Rune returns the character and true, if c holds a character.
func (c Contents) Rune() (rune, bool) {
	return c.r, c.kind == KindChar
}

// U22 returns the integer and true, if c holds a U22.
func (c Contents) U22() (U22, bool) {
	return c.u, c.kind == KindU22
}

// PackedChar encodes the contents back.
func (c Contents) PackedChar() PackedChar {
	if c.kind == KindU22 {
		return FromU22(c.u)
	}
	return FromRune(c.r)
}

// Cmp compares two contents. Characters go before integers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (c Contents) Cmp(other Contents) int {
	if c.kind != other.kind {
		if c.kind < other.kind {
			return -1
		}
		return 1
	}
	if c.kind == KindU22 {
		return c.u.Cmp(other.u)
	}
	return uint32Cmp(uint32(c.r), uint32(other.r))
}

// String returns the character itself, or the decimal integer.
func (c Contents) String() string {
	if c.kind == KindU22 {
		return c.u.String()
	}
	return string(c.r)
}

// GoString returns debug string representation, like Char('a') or U22(42).
func (c Contents) GoString() string {
	if c.kind == KindU22 {
		return c.u.GoString()
	}
	return fmt.Sprintf("Char(%q)", c.r)
}
