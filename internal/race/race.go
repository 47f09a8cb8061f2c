// Package race counts the ways to beat boat race records. Holding the button
// for h milliseconds of a race lasting t gives speed h for the remaining t-h
// milliseconds, so the boat covers h*(t-h).
package race

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/papapumpkin/aoc2023/internal/input"
)

// Sentinel errors for race sheet parsing.
var (
	// ErrMissingLine indicates the sheet lacks the Time or Distance line.
	ErrMissingLine = errors.New("expected a Time line and a Distance line")
	// ErrMismatchedRaces indicates the two lines list different numbers of values.
	ErrMismatchedRaces = errors.New("times and distances differ in count")
	// ErrBadNumber indicates a value that is not a non-negative integer.
	ErrBadNumber = errors.New("bad number")
)

// ParseError records the sheet line that could not be read.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Race is one race's duration and the distance to beat.
type Race struct {
	Time           int64
	RecordDistance int64
}

// Wins reports whether holding the button for hold beats the record.
// For hold > 0, hold*travel > record exactly when travel > record/hold
// under integer division, which cannot overflow.
func (r Race) Wins(hold int64) bool {
	if hold <= 0 {
		return r.RecordDistance < 0
	}
	return r.Time-hold > r.RecordDistance/hold
}

// CountWinning counts the hold times in [0, Time] that beat the record.
func CountWinning(r Race) int64 {
	var n int64
	for hold := int64(0); hold <= r.Time; hold++ {
		if r.Wins(hold) {
			n++
		}
	}
	return n
}

// Margin is the product of each race's winning count.
func Margin(races []Race) int64 {
	counts := make([]int64, len(races))
	for i, r := range races {
		counts[i] = CountWinning(r)
	}
	return input.Product(counts)
}

// NumberParser turns the part of a sheet line after the colon into numbers.
type NumberParser func(string) ([]int64, error)

// SeparateNumbers reads whitespace-separated values: one race per column.
func SeparateNumbers(s string) ([]int64, error) {
	var nums []int64
	for _, f := range strings.Fields(s) {
		n, err := parseNumber(f)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// KernedNumber ignores the spaces between digits and reads a single value.
func KernedNumber(s string) ([]int64, error) {
	joined := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	n, err := parseNumber(joined)
	if err != nil {
		return nil, err
	}
	return []int64{n}, nil
}

func parseNumber(tok string) (int64, error) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, tok)
	}
	return n, nil
}

// Parse reads a Time line and a Distance line into races using parse for
// the numbers on each.
func Parse(lines []input.Line, parse NumberParser) ([]Race, error) {
	sheet := input.NonBlank(lines)
	if len(sheet) < 2 {
		return nil, &ParseError{Err: ErrMissingLine}
	}

	times, err := parseLine(sheet[0], "Time", parse)
	if err != nil {
		return nil, err
	}
	records, err := parseLine(sheet[1], "Distance", parse)
	if err != nil {
		return nil, err
	}
	if len(times) != len(records) {
		return nil, &ParseError{
			Line: sheet[1].Num,
			Text: sheet[1].Text,
			Err:  fmt.Errorf("%w: %d times, %d distances", ErrMismatchedRaces, len(times), len(records)),
		}
	}

	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], RecordDistance: records[i]}
	}
	return races, nil
}

func parseLine(l input.Line, label string, parse NumberParser) ([]int64, error) {
	name, rest, ok := strings.Cut(l.Text, ":")
	if !ok || strings.TrimSpace(name) != label {
		return nil, &ParseError{Line: l.Num, Text: l.Text, Err: fmt.Errorf("%w: want %q line", ErrMissingLine, label)}
	}
	nums, err := parse(rest)
	if err != nil {
		return nil, &ParseError{Line: l.Num, Text: l.Text, Err: err}
	}
	return nums, nil
}

// Solve returns the margin with one race per column (part 1) and with the
// columns read as a single race (part 2).
func Solve(lines []input.Line) (part1, part2 int64, err error) {
	races, err := Parse(lines, SeparateNumbers)
	if err != nil {
		return 0, 0, err
	}
	single, err := Parse(lines, KernedNumber)
	if err != nil {
		return 0, 0, err
	}
	return Margin(races), Margin(single), nil
}
