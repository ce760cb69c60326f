package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenKey(t *testing.T) {
	key, err := GenKey(7)
	assert.NoError(t, err)
	assert.Len(t, key, 7)
	assert.NoError(t, ValidateKey(key))
}

func TestGenKeyAndOffset(t *testing.T) {
	key, offset, err := GenKeyAndOffset(32)
	assert.NoError(t, err)
	assert.Len(t, key, 32)
	assert.GreaterOrEqual(t, offset, 0)
	assert.Less(t, offset, 32)
	assert.NoError(t, ValidateKey(key, offset))
}

func TestGenKeyAndOffset_Neg(t *testing.T) {
	_, _, err := GenKeyAndOffset(0)
	assert.Error(t, err)
	_, err = GenKey(-3)
	assert.Error(t, err)
}
