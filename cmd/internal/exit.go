package internal

import (
	"fmt"
	"os"
	"strings"
)

const (
	ExitOK       = 0
	ExitMismatch = 1
	// ExitFailure is used for anything that prevented the command from completing, so it can't be mistaken for a mismatch.
	ExitFailure = 2
)

// Fatal will Echo the message and os.Exit with ExitFailure.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(ExitFailure)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
