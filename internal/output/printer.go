package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"catfeed/internal/feed"
)

// Printer writes human-facing messages around command output.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// ColorsEnabled reports whether the environment allows color.
func ColorsEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// NewPrinter creates a printer over the given streams.
func NewPrinter(out, errw io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errw, useColors: useColors}
}

// Title prints a bold heading followed by an underline.
func (p *Printer) Title(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "%s\n", title)
	} else {
		fmt.Fprintf(p.out, "%s\n", title)
	}
	fmt.Fprintf(p.out, "%s\n", repeatChar('─', len([]rune(title))))
}

// Error prints err with a suggestion when one applies.
func (p *Printer) Error(err error) {
	suggestion := Suggestion(err)
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: %s\n", err)
		if suggestion != "" {
			color.New(color.FgCyan).Fprintf(p.err, "  Suggestion: %s\n", suggestion)
		}
		return
	}
	fmt.Fprintf(p.err, "[ERROR] %s\n", err)
	if suggestion != "" {
		fmt.Fprintf(p.err, "  Suggestion: %s\n", suggestion)
	}
}

// Suggestion returns a hint for known feed errors.
func Suggestion(err error) string {
	var verr *feed.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var terr *feed.TransportError
	if errors.As(err, &terr) {
		return "check network access and the api.base_url / api.key settings"
	}
	return ""
}

func repeatChar(c rune, n int) string {
	s := make([]rune, n)
	for i := range s {
		s[i] = c
	}
	return string(s)
}
