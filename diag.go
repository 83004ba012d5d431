package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// diagnostics writes the one-line "Error: " and "Warning: " messages
// of the editor.
type diagnostics struct {
	w        io.Writer
	errPfx   string
	warnPfx  string
	colorful bool
}

func newDiagnostics(w io.Writer) *diagnostics {
	return &diagnostics{w: w, errPfx: "Error:", warnPfx: "Warning:"}
}

// colorize paints the prefixes with the given hex colours.
func (d *diagnostics) colorize(errHex, warnHex string) error {
	ec, err := colorful.Hex(errHex)
	if err != nil {
		return fmt.Errorf("error colour %q: %w", errHex, err)
	}
	wc, err := colorful.Hex(warnHex)
	if err != nil {
		return fmt.Errorf("warning colour %q: %w", warnHex, err)
	}
	d.errPfx = paint("Error:", ec)
	d.warnPfx = paint("Warning:", wc)
	d.colorful = true
	return nil
}

func (d *diagnostics) error(err error) { fmt.Fprintf(d.w, "%s %s\n", d.errPfx, err) }

func (d *diagnostics) warn(msg string) { fmt.Fprintf(d.w, "%s %s\n", d.warnPfx, msg) }

// paint wraps s in a 24-bit foreground colour escape.
func paint(s string, c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

// useColor decides whether diagnostics on w should be coloured for the
// configured mode.
func useColor(mode string, w any) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}

// isTerminal reports whether v is a file descriptor backed by a
// terminal. Writers without a descriptor, like a bytes.Buffer, never
// are.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
