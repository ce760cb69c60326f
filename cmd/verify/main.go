package main

import (
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/csvscreen/cmd/internal"
	"github.com/saylorsolutions/csvscreen/pkg/screen"
	flag "github.com/spf13/pflag"
)

const (
	defaultInput = "jppm-etf-dev.csv"
	defaultObf   = "jppm-etf-dev.obf"
)

func main() {
	code, err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		internal.Fatal("%v", err)
	}
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) (int, error) {
	var (
		helpFlag    bool
		noColorFlag bool
		input       string
		obf         string
		keyFlags    internal.KeyFlags
	)
	flags := flag.NewFlagSet("verify", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&noColorFlag, "no-color", false, "Disables colored output.")
	flags.StringVarP(&input, "input", "i", defaultInput, "Input CSV path.")
	flags.StringVarP(&obf, "obf", "o", defaultObf, "Obfuscated file path.")
	keyFlags.Register(flags)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stderr, `
verify checks that an obfuscated file decodes to the original CSV, byte for byte.
Whitespace anywhere in the obfuscated file is ignored.

USAGE:  verify [FLAGS]

The same key and offset given to obfuscate must be used here.

FLAGS:
%s
EXIT CODES:
    0 if the decoded content matches the CSV.
    1 if it doesn't. The first mismatching byte and both sizes are reported.
    2 if the files couldn't be read or decoded.
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

	key, err := keyFlags.Key(flags)
	if err != nil {
		return internal.ExitFailure, err
	}
	res, err := screen.Verify(input, obf, key, keyFlags.Offset)
	if err != nil {
		return internal.ExitFailure, err
	}
	if err := internal.Verdict(stdout, res, noColorFlag); err != nil {
		return internal.ExitFailure, err
	}
	if !res.Match {
		return internal.ExitMismatch, nil
	}
	return internal.ExitOK, nil
}
