package screen

import (
	"fmt"
	"io"
	"path/filepath"
)

const NoMismatch = -1

// Result describes the outcome of comparing an original payload with a decoded one.
type Result struct {
	OriginalPath   string
	ObfuscatedPath string
	Match          bool
	// MismatchIndex is the first differing byte, or the shorter length when one payload is a prefix of the other.
	// It's NoMismatch when Match is true.
	MismatchIndex int
	OriginalLen   int
	DecodedLen    int
}

// Compare checks original and decoded byte-for-byte.
func Compare(original, decoded []byte) Result {
	res := Result{
		MismatchIndex: NoMismatch,
		OriginalLen:   len(original),
		DecodedLen:    len(decoded),
	}
	minLen := min(len(original), len(decoded))
	for i := 0; i < minLen; i++ {
		if original[i] != decoded[i] {
			res.MismatchIndex = i
			return res
		}
	}
	if len(original) != len(decoded) {
		res.MismatchIndex = minLen
		return res
	}
	res.Match = true
	return res
}

// Report writes a human-readable summary of the Result to w.
func (r Result) Report(w io.Writer) error {
	if r.Match {
		_, err := fmt.Fprintf(w, "OK: %s and %s match (%d bytes).\n", displayName(r.OriginalPath, "original"), displayName(r.ObfuscatedPath, "obfuscated"), r.OriginalLen)
		return err
	}
	if _, err := fmt.Fprintln(w, "NG: decoded content does not match the CSV."); err != nil {
		return err
	}
	if r.MismatchIndex != NoMismatch {
		if _, err := fmt.Fprintf(w, "First mismatch at byte %d.\n", r.MismatchIndex); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "CSV size: %d bytes\nDecoded size: %d bytes\n", r.OriginalLen, r.DecodedLen)
	return err
}

func displayName(path, fallback string) string {
	if len(path) == 0 {
		return fallback
	}
	return filepath.Base(path)
}
