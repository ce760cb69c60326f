package main

import (
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/csvscreen/cmd/internal"
	"github.com/saylorsolutions/csvscreen/pkg/screen"
	"github.com/saylorsolutions/csvscreen/pkg/xor"
	flag "github.com/spf13/pflag"
)

const (
	defaultInput  = "jppm-etf-dev.csv"
	defaultOutput = "jppm-etf-dev.obf"
)

func main() {
	code, err := run(os.Args[1:], os.Stderr)
	if err != nil {
		internal.Fatal("%v", err)
	}
	os.Exit(code)
}

func run(args []string, stderr io.Writer) (int, error) {
	var (
		helpFlag     bool
		input        string
		output       string
		randomKeyLen int
		keyFlags     internal.KeyFlags
	)
	flags := flag.NewFlagSet("obfuscate", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.StringVarP(&input, "input", "i", defaultInput, "Input CSV path.")
	flags.StringVarP(&output, "output", "o", defaultOutput, "Output obfuscated path. An existing file will be overwritten.")
	flags.IntVar(&randomKeyLen, "random-key", 0, "Generate a random key with this many bytes, and a random offset, instead of using --key. Both are printed so they can be given to verify with --key-hex and --offset.")
	keyFlags.Register(flags)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stderr, `
obfuscate XORs a CSV file with a repeating key and Base64 encodes the result, so it's not trivially readable when shipped to a browser.
The output is a single line of padded standard Base64, followed by a newline.

USAGE:  obfuscate [FLAGS]

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
Anyone with the key, which must be shipped alongside the data to be useful, can reverse it.
`, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return internal.ExitFailure, fmt.Errorf("error parsing flags: %w", err)
	}
	if helpFlag {
		flags.Usage()
		return internal.ExitOK, nil
	}
	if flags.NArg() > 0 {
		return internal.ExitFailure, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	key, offset, err := obfuscateKey(flags, &keyFlags, randomKeyLen, stderr)
	if err != nil {
		return internal.ExitFailure, err
	}
	if err := screen.Obfuscate(input, output, key, offset); err != nil {
		return internal.ExitFailure, err
	}
	return internal.ExitOK, nil
}

// obfuscateKey returns the key and offset selected by flags.
// A generated key comes with a random offset, and both are printed since verify needs them.
func obfuscateKey(flags *flag.FlagSet, keyFlags *internal.KeyFlags, randomKeyLen int, stderr io.Writer) ([]byte, int, error) {
	if !flags.Changed("random-key") {
		key, err := keyFlags.Key(flags)
		return key, keyFlags.Offset, err
	}
	if flags.Changed("key") || flags.Changed("key-hex") || flags.Changed("offset") {
		return nil, 0, fmt.Errorf("--random-key may not be used with --key, --key-hex, or --offset")
	}
	key, offset, err := xor.GenKeyAndOffset(randomKeyLen)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to generate key: %w", err)
	}
	_, _ = fmt.Fprintf(stderr, "Generated key: %x (offset %d)\n", key, offset)
	return key, offset, nil
}
