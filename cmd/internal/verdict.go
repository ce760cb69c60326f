package internal

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/saylorsolutions/csvscreen/pkg/screen"
)

// Verdict writes the Result report to w, with the OK/NG line colored.
// Color is also dropped when color.NoColor is set, which is the default when stdout is not a terminal.
func Verdict(w io.Writer, res screen.Result, noColor bool) error {
	var buf strings.Builder
	if err := res.Report(&buf); err != nil {
		return err
	}
	head, rest, _ := strings.Cut(buf.String(), "\n")

	c := color.New(color.Bold, color.FgRed)
	if res.Match {
		c = color.New(color.Bold, color.FgGreen)
	}
	if noColor {
		c.DisableColor()
	}
	if _, err := c.Fprintln(w, head); err != nil {
		return err
	}
	_, err := io.WriteString(w, rest)
	return err
}
