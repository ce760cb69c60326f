package internal

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/saylorsolutions/csvscreen/pkg/xor"
	flag "github.com/spf13/pflag"
)

const (
	DefaultKey = "hirotgr"
)

// KeyFlags holds the key selection flags shared by both commands.
type KeyFlags struct {
	Text   string
	Hex    string
	Offset int
}

// Register adds the key flags to the FlagSet.
func (k *KeyFlags) Register(flags *flag.FlagSet) {
	flags.StringVarP(&k.Text, "key", "k", DefaultKey, "XOR key text, used as UTF-8 bytes.")
	flags.StringVar(&k.Hex, "key-hex", "", "XOR key as a hex string. Use this for keys that aren't printable text, like one generated with --random-key.")
	flags.IntVar(&k.Offset, "offset", 0, "Position in the key to start screening from. Must be less than the key length.")
}

// Key resolves the key bytes selected by the parsed flags, and validates them with the offset.
func (k *KeyFlags) Key(flags *flag.FlagSet) ([]byte, error) {
	var key []byte
	if flags.Changed("key-hex") {
		if flags.Changed("key") {
			return nil, errors.New("--key and --key-hex may not be used together")
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, hex.NewDecoder(strings.NewReader(k.Hex))); err != nil {
			return nil, fmt.Errorf("failed to decode --key-hex, must be a hex string with only the characters a-f, A-F, or 0-9: %w", err)
		}
		key = buf.Bytes()
	} else {
		key = []byte(k.Text)
	}
	if err := xor.ValidateKey(key, k.Offset); err != nil {
		return nil, err
	}
	return key, nil
}
