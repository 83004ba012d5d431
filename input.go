package main

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// endOfLine is what token reports once the cursor is past the last rune.
const endOfLine rune = -1

// input is the single line source of the editor. Command mode and
// insertion mode both pull lines from it, one after the other, and a
// line may be of any length. The current line is kept in text and
// walked with a rune cursor.
type input struct {
	r       *bufio.Reader
	text    string
	off     int
	readErr error
}

func newInput(r io.Reader) input {
	if r == nil {
		return input{}
	}
	return input{r: bufio.NewReader(r)}
}

// reset points the cursor at the start of s.
func (i *input) reset(s string) {
	i.text = s
	i.off = 0
}

// peek decodes the rune under the cursor. size is 0 at the end of the
// line.
func (i *input) peek() (r rune, size int) {
	if i.eof() {
		return endOfLine, 0
	}
	return utf8.DecodeRuneInString(i.text[i.off:])
}

func (i *input) eof() bool { return i.off >= len(i.text) }

func (i *input) token() rune {
	r, _ := i.peek()
	return r
}

func (i *input) consume() {
	_, size := i.peek()
	i.off += size
}

// match reports whether the rune under the cursor is one of set.
func (i *input) match(set string) bool {
	r, size := i.peek()
	return size > 0 && strings.ContainsRune(set, r)
}

// rest returns the unconsumed part of the current line.
func (i *input) rest() string { return i.text[i.off:] }

// Scan reads the next line into the cursor, without its "\n" or
// "\r\n". A last line lacking a newline still counts. Scan reports
// false at the end of the input or when the reader fails.
func (i *input) Scan() bool {
	if i.r == nil {
		return false
	}
	s, err := i.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		i.readErr = err
		i.reset("")
		return false
	}
	if err != nil && s == "" {
		i.reset("")
		return false
	}
	s = strings.TrimSuffix(s, "\n")
	i.reset(strings.TrimSuffix(s, "\r"))
	return true
}

// err returns the first error of the underlying reader other than
// io.EOF.
func (i *input) err() error { return i.readErr }
