package xor

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

// GenKey will generate a random XOR key with the given length, using the OS entropy pool.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a key with length <= 0")
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}

// GenKeyAndOffset generates a key like GenKey, along with a random starting offset within it.
func GenKeyAndOffset(length int) ([]byte, int, error) {
	key, err := GenKey(length)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return nil, 0, err
	}
	return key, int(binary.BigEndian.Uint32(buf) % uint32(length)), nil
}
