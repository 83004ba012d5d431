package main

import (
	"fmt"
	"log"
)

// exec runs a parsed command against the buffer.
func (ed *Editor) exec(cmd Command) (state, error) {
	log.Printf("exec: %T%+v dot=%d lines=%d dirty=%t\n", cmd, cmd, ed.dot, len(ed.lines), ed.dirty)
	switch c := cmd.(type) {
	case quitCmd:
		return ed.quit(c.force)
	case writeCmd:
		return ed.writeLines(c.loc, c.quit)
	case printCmd:
		return running, ed.print(c.loc, c.numbered)
	case infoCmd:
		ed.info()
		return running, nil
	case appendCmd:
		return ed.appendLines(c.loc)
	}
	panic(fmt.Sprintf("unhandled command %T", cmd))
}

func (ed *Editor) quit(force bool) (state, error) {
	if ed.dirty {
		if !force {
			return running, ErrUnsavedChanges
		}
		ed.diag.warn(warnDiscard)
	}
	return stopped, nil
}

// writeLines saves the addressed lines, the whole buffer by default,
// to the current path. The buffer is only marked clean once the write
// succeeded, and a failed write never quits.
func (ed *Editor) writeLines(loc Location, quit bool) (state, error) {
	if ed.path == "" {
		return running, ErrNoPath
	}
	first, second := 1, len(ed.lines)
	if loc.kind != locNone {
		var err error
		if first, second, err = ed.span(loc); err != nil {
			return running, err
		}
	}
	size, err := ed.file.write(ed.path, first, second)
	if err != nil {
		return running, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	ed.dirty = false
	if !ed.silent {
		fmt.Fprintln(ed.stdout, size)
	}
	if quit {
		return stopped, nil
	}
	return running, nil
}

// print shows the addressed lines, the current line by default.
func (ed *Editor) print(loc Location, numbered bool) error {
	if loc.kind == locNone {
		loc = Single(Relative(0))
	}
	first, second, err := ed.span(loc)
	if err != nil {
		return err
	}
	ed.display(first, second, numbered)
	return nil
}

func (ed *Editor) info() {
	s := ed.file.stats()
	if ed.path != "" {
		fmt.Fprintf(ed.stdout, "path: %s\n", ed.path)
	}
	fmt.Fprintf(ed.stdout, "lines: %d\n", s.lines)
	fmt.Fprintf(ed.stdout, "characters: %d\n", s.chars)
	if s.chars == s.bytes {
		fmt.Fprintf(ed.stdout, "bytes: %d (all ASCII)\n", s.bytes)
	} else {
		fmt.Fprintf(ed.stdout, "bytes: %d\n", s.bytes)
	}
	fmt.Fprintf(ed.stdout, "graphemes: %d\n", s.graphemes)
	if s.lines > 0 {
		fmt.Fprintf(ed.stdout, "widest line: %d (%d columns)\n", s.widestLine, s.widest)
	}
}

// appendLines reads lines until a lone "." and inserts them after the
// addressed line, or after the last line when no address is given.
// The buffer counts as modified even when nothing was typed. Running
// out of input before the "." keeps what was typed, warns that it is
// not saved and ends the whole session.
func (ed *Editor) appendLines(loc Location) (state, error) {
	dest := len(ed.lines)
	if loc.kind != locNone {
		var err error
		if _, dest, err = ed.span(loc); err != nil {
			return running, err
		}
	}
	var (
		lines []string
		st    = stopped
	)
	for ed.input.Scan() {
		if ed.input.text == "." {
			st = running
			break
		}
		lines = append(lines, ed.input.text)
	}
	if len(lines) > 0 {
		ed.file.append(dest, lines)
		ed.dot = dest + len(lines)
	}
	ed.dirty = true
	if st == stopped {
		log.Printf("append: input ended before \".\", %d lines captured\n", len(lines))
		ed.diag.warn(warnDiscard)
		return ed.endOfInput(), nil
	}
	return st, nil
}

// line resolves a single address against the buffer.
func (ed *Editor) line(a Address, dot int) (int, error) {
	n := a.resolve(dot, len(ed.lines))
	if n < 1 || n > len(ed.lines) {
		return 0, ErrAddressOutOfBounds
	}
	return n, nil
}

// span resolves a location to the inclusive line numbers first and
// second. The end of a ";" range is resolved relative to its start.
func (ed *Editor) span(loc Location) (first, second int, err error) {
	if first, err = ed.line(loc.start, ed.dot); err != nil {
		return 0, 0, err
	}
	if loc.kind == locSingle {
		return first, first, nil
	}
	dot := ed.dot
	if loc.sep == Semicolon {
		dot = first
	}
	if second, err = ed.line(loc.end, dot); err != nil {
		return 0, 0, err
	}
	if first > second {
		return 0, 0, ErrInvalidRange
	}
	return first, second, nil
}
