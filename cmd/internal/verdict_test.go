package internal

import (
	"strings"
	"testing"

	"github.com/saylorsolutions/csvscreen/pkg/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict_NoColor(t *testing.T) {
	res := screen.Compare([]byte("abcdef"), []byte("abcXef"))
	var out strings.Builder
	require.NoError(t, Verdict(&out, res, true))
	assert.Equal(t, "NG: decoded content does not match the CSV.\n"+
		"First mismatch at byte 3.\n"+
		"CSV size: 6 bytes\n"+
		"Decoded size: 6 bytes\n", out.String())
}

func TestVerdict_Match(t *testing.T) {
	res := screen.Compare([]byte("abc"), []byte("abc"))
	var out strings.Builder
	require.NoError(t, Verdict(&out, res, true))
	assert.Equal(t, "OK: original and obfuscated match (3 bytes).\n", out.String())
}
