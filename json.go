// Copyright 2020 Aleksandr Demakin. All rights reserved.

package packedchar

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	// JSONMode defines the way PackedChar values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeContents
)

const (
	// JSONModeContents marshals characters as strings, like `"a"`, and integers as numbers, like `42`.
	JSONModeContents = iota
	// JSONModeWord marshals the raw word, like `{"w":55338}`.
	JSONModeWord
)

var (
	wordJSONParts = []string{`{"w":`, `}`}
)

// MarshalJSON marshals u as a json number.
func (u U22) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(u.n), 10), nil
}

// UnmarshalJSON unmarshals a number, or a quoted number, into a U22.
func (u *U22) UnmarshalJSON(data []byte) error {
	n, err := parseUint32JSON(data)
	if err != nil {
		return err
	}
	value, err := FromUint32(n)
	if err != nil {
		return err
	}
	*u = value
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (p PackedChar) MarshalJSON() ([]byte, error) {
	return p.toJSON(JSONMode)
}

func (p PackedChar) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeWord:
		data := []byte(wordJSONParts[0])
		data = strconv.AppendUint(data, uint64(p.w), 10)
		return append(data, wordJSONParts[1]...), nil
	default:
		c := p.Contents()
		if u, ok := c.U22(); ok {
			return u.MarshalJSON()
		}
		return json.Marshal(c.String())
	}
}

// UnmarshalJSON unmarshals a single-character string, a number, or a word object into a value.
func (p *PackedChar) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	var (
		value PackedChar
		err   error
	)
	switch data[0] {
	case '{':
		d := struct {
			W *uint32
		}{}
		if err = json.Unmarshal(data, &d); err != nil {
			return err
		}
		if d.W == nil {
			return fmt.Errorf("missing word in %s", data)
		}
		value, err = FromWord(*d.W)
	case '"':
		var s string
		if err = json.Unmarshal(data, &s); err != nil {
			return err
		}
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("expected a single character, got %q", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		value = FromRune(r)
	default:
		var n uint32
		if n, err = parseUint32JSON(data); err != nil {
			return err
		}
		value, err = TryFromUint32(n)
	}
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func parseUint32JSON(data []byte) (uint32, error) {
	s := string(data)
	if l := len(s); l >= 2 && s[0] == '"' && s[l-1] == '"' {
		s = s[1 : l-1]
	}
	if len(s) == 0 {
		return 0, fmt.Errorf("empty input")
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, fmt.Errorf("parsing failed: %s: %w", s, ErrOutOfRange)
		}
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	return uint32(n), nil
}
