// Package input reads puzzle input files into numbered lines and carries the
// small integer helpers shared by the solvers.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/constraints"
)

// DefaultPath is the input file used when no path argument is given.
const DefaultPath = "input.txt"

// Line is a single input line with its 1-based position in the file.
type Line struct {
	Num  int
	Text string
}

// Blank reports whether the line holds nothing but whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// ReadLines reads the file at path and returns every line, blank or not.
func ReadLines(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	lines, err := Scan(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// Scan splits r into numbered lines, dropping any trailing carriage return.
func Scan(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []Line
	n := 0
	for scanner.Scan() {
		n++
		lines = append(lines, Line{Num: n, Text: strings.TrimRight(scanner.Text(), "\r")})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// FromString is Scan over an in-memory string. Used mostly by tests.
func FromString(s string) []Line {
	lines, _ := Scan(strings.NewReader(s))
	return lines
}

// NonBlank returns the lines that carry content, in order.
func NonBlank(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if !l.Blank() {
			out = append(out, l)
		}
	}
	return out
}

// Sum adds up xs.
func Sum[T constraints.Integer](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Product multiplies xs together. The product of nothing is 1.
func Product[T constraints.Integer](xs []T) T {
	total := T(1)
	for _, x := range xs {
		total *= x
	}
	return total
}
