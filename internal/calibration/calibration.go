// Package calibration recovers calibration values from lines of text. A
// line's value is its first and last digit read as a two-digit number, where
// digits may be written as numerals or spelled out ("one" through "nine").
package calibration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/papapumpkin/aoc2023/internal/input"
)

// ErrNoDigits indicates a line without any digit.
var ErrNoDigits = errors.New("line has no digits")

// ParseError records the line a calibration value could not be read from.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type token struct {
	text  string
	digit int
}

var tokens = []token{
	{"1", 1}, {"one", 1},
	{"2", 2}, {"two", 2},
	{"3", 3}, {"three", 3},
	{"4", 4}, {"four", 4},
	{"5", 5}, {"five", 5},
	{"6", 6}, {"six", 6},
	{"7", 7}, {"seven", 7},
	{"8", 8}, {"eight", 8},
	{"9", 9}, {"nine", 9},
}

// Digits returns every digit in s in reading order. Spelled digits may
// share letters, so "twone" yields 2 then 1.
func Digits(s string) []int {
	var digits []int
	for i := range len(s) {
		rest := s[i:]
		for _, tok := range tokens {
			if strings.HasPrefix(rest, tok.text) {
				digits = append(digits, tok.digit)
				break
			}
		}
	}
	return digits
}

// Value is ten times the first digit of s plus its last digit.
func Value(s string) (int, error) {
	digits := Digits(s)
	if len(digits) == 0 {
		return 0, ErrNoDigits
	}
	return 10*digits[0] + digits[len(digits)-1], nil
}

// Sum adds up the calibration values of every non-blank line.
func Sum(lines []input.Line) (int, error) {
	var values []int
	for _, l := range input.NonBlank(lines) {
		v, err := Value(l.Text)
		if err != nil {
			return 0, &ParseError{Line: l.Num, Text: l.Text, Err: err}
		}
		values = append(values, v)
	}
	return input.Sum(values), nil
}
