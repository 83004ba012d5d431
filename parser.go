package main

import (
	"errors"
	"log"
	"strconv"
)

type addrKind int

const (
	addrAbsolute addrKind = iota
	addrRelative
	addrLast
)

// Address refers to a single line. It stays symbolic until a command
// resolves it against the buffer.
type Address struct {
	kind addrKind
	n    int
}

// Absolute addresses line n.
func Absolute(n int) Address { return Address{kind: addrAbsolute, n: n} }

// Relative addresses the line off lines away from the current line.
func Relative(off int) Address { return Address{kind: addrRelative, n: off} }

// Last addresses the last line of the buffer.
func Last() Address { return Address{kind: addrLast} }

func (a Address) String() string {
	switch a.kind {
	case addrAbsolute:
		return strconv.Itoa(a.n)
	case addrRelative:
		switch {
		case a.n == 0:
			return "."
		case a.n > 0:
			return "+" + strconv.Itoa(a.n)
		default:
			return strconv.Itoa(a.n)
		}
	case addrLast:
		return "$"
	}
	return "?"
}

// resolve returns the line number the address refers to, given the
// current line and the number of lines in the buffer. The result is
// not bounds checked.
func (a Address) resolve(dot, last int) int {
	switch a.kind {
	case addrAbsolute:
		return a.n
	case addrRelative:
		return dot + a.n
	case addrLast:
		return last
	}
	panic("unreachable")
}

// RangeSeparator is the punctuation joining the two ends of a range.
type RangeSeparator int

const (
	Comma RangeSeparator = iota
	Semicolon
)

func (s RangeSeparator) String() string {
	if s == Semicolon {
		return ";"
	}
	return ","
}

type locKind int

const (
	locNone locKind = iota
	locSingle
	locRange
)

// Location is the address part of a command: nothing, one address, or
// an inclusive range.
type Location struct {
	kind       locKind
	sep        RangeSeparator
	start, end Address
}

// NoLocation is the location of a command typed without an address.
func NoLocation() Location { return Location{} }

// Single is a location made of one address.
func Single(a Address) Location { return Location{kind: locSingle, start: a, end: a} }

// Range is the inclusive range start..end joined by sep.
func Range(sep RangeSeparator, start, end Address) Location {
	return Location{kind: locRange, sep: sep, start: start, end: end}
}

func (l Location) String() string {
	switch l.kind {
	case locSingle:
		return l.start.String()
	case locRange:
		return l.start.String() + l.sep.String() + l.end.String()
	}
	return ""
}

// address consumes at most one address token. The boolean reports
// whether an address was present; when it is false nothing has been
// consumed.
func (i *input) address() (Address, bool, error) {
	switch tok := i.token(); {
	case isDigit(tok):
		n, err := i.scanNumber()
		if err != nil {
			return Address{}, false, ErrAddressOutOfBounds
		}
		return Absolute(n), true, nil
	case tok == '+' || tok == '-':
		i.consume()
		n := 1
		if isDigit(i.token()) {
			var err error
			if n, err = i.scanNumber(); err != nil {
				return Address{}, false, ErrAddressOutOfBounds
			}
		}
		if tok == '-' {
			n = -n
		}
		return Relative(n), true, nil
	case tok == '.':
		i.consume()
		return Relative(0), true, nil
	case tok == '$':
		i.consume()
		return Last(), true, nil
	case tok == '/' || tok == '?' && i.rest() != "?":
		// A lone trailing '?' is the info command, not a search.
		return Address{}, false, ErrRegexNotSupported
	}
	return Address{}, false, nil
}

// location consumes an optional address, an optional range separator
// and an optional second address, filling in the missing ends of a
// range according to its separator.
func (i *input) location() (Location, error) {
	start, hasStart, err := i.address()
	if err != nil {
		return Location{}, err
	}
	if !i.match(",;") {
		if !hasStart {
			return NoLocation(), nil
		}
		return Single(start), nil
	}
	sep := Comma
	if i.token() == ';' {
		sep = Semicolon
	}
	i.consume()
	end, hasEnd, err := i.address()
	if err != nil {
		return Location{}, err
	}
	log.Printf("location: start=%v(%t) sep=%v end=%v(%t)\n", start, hasStart, sep, end, hasEnd)
	switch {
	case !hasStart && hasEnd && sep == Semicolon:
		return Range(Semicolon, Relative(0), end), nil
	case !hasStart && hasEnd:
		return Range(Comma, Absolute(1), end), nil
	case !hasStart:
		return Range(Comma, Absolute(1), Last()), nil
	case hasEnd:
		return Range(sep, start, end), nil
	case sep == Comma:
		return Range(Comma, start, Last()), nil
	default:
		return Range(Semicolon, start, Relative(0)), nil
	}
}

// scanNumber consumes a run of ASCII digits. The only error it can
// return is a range error from strconv.
func (i *input) scanNumber() (int, error) {
	start := i.off
	for isDigit(i.token()) {
		i.consume()
	}
	n, err := strconv.Atoi(i.text[start:i.off])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		log.Printf("scanNumber: unexpected error %v\n", err)
	}
	return n, err
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
