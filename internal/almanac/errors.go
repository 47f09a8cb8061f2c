package almanac

import (
	"errors"
	"fmt"
)

// Sentinel errors for almanac parsing and solving.
var (
	// ErrMissingSeeds indicates the input does not open with a "seeds:" line.
	ErrMissingSeeds = errors.New("input does not start with a seeds line")
	// ErrUnknownLine indicates a line that is neither seeds, a known header, nor a rule.
	ErrUnknownLine = errors.New("unrecognized line")
	// ErrRuleWithoutStage indicates a rule line that appears before any stage header.
	ErrRuleWithoutStage = errors.New("rule without stage")
	// ErrBrokenChain indicates a stage header that does not continue from the previous stage.
	ErrBrokenChain = errors.New("stage does not continue the conversion chain")
	// ErrOddSeedRanges indicates the seeds line cannot be read as (start, length) pairs.
	ErrOddSeedRanges = errors.New("seed ranges need an even number of values")
	// ErrRangeOverflow indicates an interval whose end does not fit in an int64.
	ErrRangeOverflow = errors.New("interval end overflows int64")
	// ErrNoSeeds indicates there was nothing to take the minimum over.
	ErrNoSeeds = errors.New("no seeds to convert")
	// ErrInvalidStrategy indicates an unrecognized aggregation strategy name.
	ErrInvalidStrategy = errors.New("invalid strategy")
)

// ParseError records a parse failure along with the offending input line.
type ParseError struct {
	Line int // 1-based; 0 when the failure is not tied to one line
	Text string
	Err  error
}

// Error returns a message naming the line number and its content.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
