package xor

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey      = errors.New("key must not be empty")
	ErrInvalidOffset = errors.New("key offset out of range")
)

type xorScreen struct {
	key  []byte
	init int
	cur  int
}

// ValidateKey checks that key may be used for screening, starting at the optional offset.
func ValidateKey(key []byte, offset ...int) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if len(offset) > 0 && (offset[0] < 0 || offset[0] >= len(key)) {
		return fmt.Errorf("%w: offset %d for key of len %d", ErrInvalidOffset, offset[0], len(key))
	}
	return nil
}

func newXorScreen(key []byte, offset ...int) (*xorScreen, error) {
	if err := ValidateKey(key, offset...); err != nil {
		return nil, err
	}
	s := &xorScreen{
		key: key,
	}
	if len(offset) > 0 {
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

func (s *xorScreen) reset() {
	s.cur = s.init
}

// Apply returns a screened copy of data, leaving data untouched.
// The result always has the same length as data.
func Apply(data, key []byte, offset ...int) ([]byte, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = scr.screen(b)
	}
	return out, nil
}
