// Copyright 2020 Aleksandr Demakin. All rights reserved.

package packedchar

import (
	"fmt"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// Decimal returns u as a decimal number.
func (u U22) Decimal() decimal.Decimal {
	return decimal.New(int64(u.n), 0)
}

// U22FromDecimal converts an integral decimal number into a U22.
// Returns ErrNotInteger for numbers with a fractional part, and an error matching
// ErrOutOfRange for numbers out of [0, MaxU22].
func U22FromDecimal(d decimal.Decimal) (U22, error) {
	if !d.Equal(d.Truncate(0)) {
		return U22{}, fmt.Errorf("%s: %w", d, ErrNotInteger)
	}
	if d.Sign() < 0 || d.Cmp(decimal.New(maxUint32, 0)) > 0 {
		return U22{}, fmt.Errorf("%s: %w", d, ErrOutOfRange)
	}
	return FromUint32(uint32(d.IntPart()))
}

// Fixed returns u as a fixed-point number.
func (u U22) Fixed() fixed.Fixed {
	return fixed.NewI(int64(u.n), 0)
}

// U22FromFixed converts an integral fixed-point number into a U22.
// Returns ErrNotInteger for NaN and numbers with a fractional part, and an error matching
// ErrOutOfRange for numbers out of [0, MaxU22].
func U22FromFixed(f fixed.Fixed) (U22, error) {
	if f.IsNaN() || f.Frac() != 0 {
		return U22{}, fmt.Errorf("%s: %w", f, ErrNotInteger)
	}
	i := f.Int()
	if i < 0 || i > maxUint32 {
		return U22{}, fmt.Errorf("%s: %w", f, ErrOutOfRange)
	}
	return FromUint32(uint32(i))
}
