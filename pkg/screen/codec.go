package screen

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/saylorsolutions/csvscreen/pkg/xor"
)

var (
	ErrDecode = errors.New("obfuscated text is not valid base64")
)

// Encode screens data with key and writes it to w as padded standard Base64, followed by a newline.
func Encode(w io.Writer, data, key []byte, offset ...int) error {
	enc := base64.NewEncoder(base64.StdEncoding, w)
	xw, err := xor.NewWriter(enc, key, offset...)
	if err != nil {
		return err
	}
	if _, err := xw.Write(data); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// Decode reverses Encode.
// All whitespace is stripped from text before decoding, not just leading and trailing whitespace.
func Decode(text string, key []byte, offset ...int) ([]byte, error) {
	src := base64.NewDecoder(base64.StdEncoding, strings.NewReader(StripWhitespace(text)))
	r, err := xor.NewReader(src, key, offset...)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, nil
}

// StripWhitespace removes every rune for which unicode.IsSpace is true, along with the
// ASCII file, group, record, and unit separators (U+001C to U+001F).
func StripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, text)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
