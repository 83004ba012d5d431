package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

var (
	ErrUnexpectedEndOfCommand = errors.New("unexpected end of command")
	ErrUnexpectedCharacter    = errors.New("unexpected character")
	ErrAddressOutOfBounds     = errors.New("address out of bounds")
	ErrRegexNotSupported      = errors.New("regular expressions are not supported yet")

	ErrInvalidRange   = errors.New("invalid range")
	ErrNoPath         = errors.New("no path provided")
	ErrOpenFailed     = errors.New("failed to open file")
	ErrUnsavedChanges = errors.New("current file has unsaved changes")
	ErrWriteFailed    = errors.New("failed to write file")
)

const DefaultPrompt = "> "

const (
	warnDiscard = "discarding unsaved changes"
	warnNewline = "missing newline at end of file, one was added"
)

// state tells the run loop whether to keep reading commands.
type state int

const (
	running state = iota
	stopped
)

type Editor struct {
	file
	input

	dot int // current line, 0 when the buffer is empty

	prompt string // printed before each command, may be empty
	silent bool   // suppress byte counts

	diag   *diagnostics
	stdin  io.Reader
	stdout io.Writer
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) {
		ed.stdin = stdin
		ed.input = newInput(stdin)
	}
}

// WithStdout sets where command output and diagnostics go.
func WithStdout(stdout io.Writer) Option {
	return func(ed *Editor) {
		ed.stdout = stdout
		ed.diag.w = stdout
	}
}

func WithPrompt(prompt string) Option {
	return func(ed *Editor) { ed.prompt = prompt }
}

func WithSilent(t bool) Option {
	return func(ed *Editor) { ed.silent = t }
}

// WithDiagnostics replaces the diagnostic writer, e.g. with a coloured
// one. Its destination follows the editor's stdout.
func WithDiagnostics(d *diagnostics) Option {
	return func(ed *Editor) {
		d.w = ed.stdout
		ed.diag = d
	}
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		diag:   newDiagnostics(os.Stdout),
	}
	ed.input = newInput(ed.stdin)
	for _, opt := range opts {
		opt(ed)
	}
	return ed
}

// Open replaces the buffer with the content of path. It refuses to do
// so while the current buffer has unsaved changes.
func (ed *Editor) Open(path string) error {
	if ed.dirty {
		return ErrUnsavedChanges
	}
	f, size, fixed, err := readFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	ed.file = f
	ed.dot = len(f.lines)
	if fixed {
		ed.diag.warn(warnNewline)
	}
	if !ed.silent {
		fmt.Fprintln(ed.stdout, size)
	}
	return nil
}

// Run reads and executes commands until the session stops.
func (ed *Editor) Run() {
	for ed.step() == running {
	}
}

// step runs one prompt, read, parse and execute cycle.
func (ed *Editor) step() state {
	if ed.prompt != "" {
		fmt.Fprint(ed.stdout, ed.prompt)
	}
	if !ed.input.Scan() {
		return ed.endOfInput()
	}
	line := strings.TrimSpace(ed.input.text)
	if line == "" {
		return running
	}
	cmd, err := parseCommand(line)
	if err != nil {
		log.Printf("parse %q: %v\n", line, err)
		ed.diag.error(err)
		return running
	}
	st, err := ed.exec(cmd)
	if err != nil {
		ed.diag.error(err)
	}
	return st
}

// endOfInput stops the session once the line source is exhausted. It
// is a clean stop: unsaved changes are dropped without a word.
func (ed *Editor) endOfInput() state {
	if err := ed.input.err(); err != nil {
		ed.diag.error(err)
	}
	return stopped
}

// display prints lines start through end and leaves dot on the last
// one.
func (ed *Editor) display(start, end int, numbered bool) {
	for i := start; i <= end; i++ {
		if numbered {
			fmt.Fprintf(ed.stdout, "%d\t", i)
		}
		fmt.Fprintln(ed.stdout, ed.file.lines[i-1])
		ed.dot = i
	}
}
