package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// file is the text buffer. Lines are kept without their terminator;
// the text they stand for always ends in a newline.
type file struct {
	dirty bool     // modified since the last load or write
	lines []string // file content
	path  string   // path the buffer was loaded from, if any
}

// stats describes the content of a buffer.
type stats struct {
	lines      int
	chars      int // code points, terminators included
	bytes      int
	graphemes  int
	widest     int // display columns of the longest line
	widestLine int
}

// readFile loads path. fixed reports whether the content lacked a
// final newline and one had to be added.
func readFile(path string) (f file, size int, fixed bool, err error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return file{}, 0, false, err
	}
	size = len(buf)
	f.path = path
	if len(buf) == 0 {
		return f, size, false, nil
	}
	text := string(buf)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
		fixed = true
	}
	f.lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	log.Printf("readFile: %s: %d bytes, %d lines, fixed=%t\n", path, size, len(f.lines), fixed)
	return f, size, fixed, nil
}

// append inserts lines after line dest. A dest of 0 inserts at the top.
func (f *file) append(dest int, lines []string) {
	f.lines = append(f.lines[:dest], append(lines, f.lines[dest:]...)...)
}

// write stores the lines start through end in path and returns the
// number of bytes written. An empty range truncates the file.
func (f *file) write(path string, start, end int) (int, error) {
	fd, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriter(fd)
	var size int
	log.Printf("write: range %d to %d to %s\n", start, end, path)
	for i := start - 1; i >= 0 && i < end; i++ {
		n, err := fmt.Fprintln(w, f.lines[i])
		size += n
		if err != nil {
			fd.Close()
			return size, err
		}
	}
	if err := w.Flush(); err != nil {
		fd.Close()
		return size, err
	}
	return size, fd.Close()
}

func (f *file) stats() stats {
	s := stats{lines: len(f.lines)}
	for i, ln := range f.lines {
		s.chars += utf8.RuneCountInString(ln) + 1
		s.bytes += len(ln) + 1
		s.graphemes += uniseg.GraphemeClusterCount(ln) + 1
		if w := runewidth.StringWidth(ln); w > s.widest || s.widestLine == 0 {
			s.widest, s.widestLine = w, i+1
		}
	}
	return s
}
