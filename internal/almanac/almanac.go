// Package almanac solves the seed almanac puzzle: seeds are converted through
// a fixed chain of categories (seed, soil, fertilizer, ... location) by
// per-stage interval rules, and the lowest resulting location is reported.
package almanac

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/papapumpkin/aoc2023/internal/input"
)

const seedsPrefix = "seeds:"

// Almanac is a parsed puzzle input.
type Almanac struct {
	Seeds    Seeds
	Pipeline Pipeline
}

// parseMode is where the parser is in the input.
type parseMode int

const (
	expectSeeds parseMode = iota // nothing read yet
	scanning                     // seeds read; headers and rules follow
)

const noStage = -1

// parseState is threaded through step; each call returns the next state.
type parseState struct {
	mode    parseMode
	seeds   Seeds
	stages  []Stage
	current int // index into stages of the most recent header, or noStage
}

// Parse builds an Almanac from the input lines. Blank lines are ignored.
func Parse(lines []input.Line) (*Almanac, error) {
	st := parseState{mode: expectSeeds, current: noStage}
	for _, l := range lines {
		if l.Blank() {
			continue
		}
		next, err := st.step(l)
		if err != nil {
			return nil, err
		}
		st = next
	}

	if st.mode == expectSeeds {
		return nil, &ParseError{Err: fmt.Errorf("empty input: %w", ErrMissingSeeds)}
	}

	return &Almanac{
		Seeds:    st.seeds,
		Pipeline: Pipeline{Stages: st.stages},
	}, nil
}

// ParseString is Parse over an in-memory input.
func ParseString(s string) (*Almanac, error) {
	return Parse(input.FromString(s))
}

// step consumes one non-blank line.
func (st parseState) step(l input.Line) (parseState, error) {
	text := strings.TrimSpace(l.Text)
	fail := func(err error) (parseState, error) {
		return st, &ParseError{Line: l.Num, Text: l.Text, Err: err}
	}

	if st.mode == expectSeeds {
		seeds, err := parseSeeds(text)
		if err != nil {
			return fail(err)
		}
		st.seeds = seeds
		st.mode = scanning
		return st, nil
	}

	if hdr, ok := stageHeaders[text]; ok {
		want := Seed
		if st.current != noStage {
			want = st.stages[st.current].To
		}
		if hdr.from != want {
			return fail(fmt.Errorf("%w: expected a stage from %s", ErrBrokenChain, want.Name()))
		}
		st.stages = append(st.stages, Stage{From: hdr.from, To: hdr.to})
		st.current = len(st.stages) - 1
		return st, nil
	}

	if !startsWithDigit(text) {
		return fail(ErrUnknownLine)
	}
	rule, err := parseRule(text)
	if err != nil {
		return fail(err)
	}
	if st.current == noStage {
		return fail(ErrRuleWithoutStage)
	}
	cur := &st.stages[st.current]
	cur.Rules = append(cur.Rules, rule)
	return st, nil
}

func parseSeeds(text string) (Seeds, error) {
	rest, ok := strings.CutPrefix(text, seedsPrefix)
	if !ok {
		return nil, ErrMissingSeeds
	}
	fields := strings.Fields(rest)
	seeds := make(Seeds, 0, len(fields))
	for _, f := range fields {
		n, err := parseNonNegative(f)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, n)
	}
	return seeds, nil
}

// parseRule reads "dest source length".
func parseRule(text string) (IntervalRule, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return IntervalRule{}, fmt.Errorf("%w: rule needs 3 numbers, got %d", ErrUnknownLine, len(fields))
	}
	var nums [3]int64
	for i, f := range fields {
		n, err := parseNonNegative(f)
		if err != nil {
			return IntervalRule{}, err
		}
		nums[i] = n
	}
	if nums[0] > math.MaxInt64-nums[2] || nums[1] > math.MaxInt64-nums[2] {
		return IntervalRule{}, fmt.Errorf("%w: rule %q", ErrRangeOverflow, text)
	}
	return IntervalRule{DestStart: nums[0], SourceStart: nums[1], Length: nums[2]}, nil
}

func parseNonNegative(tok string) (int64, error) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrUnknownLine, tok)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative number %q", ErrUnknownLine, tok)
	}
	return n, nil
}

func startsWithDigit(s string) bool {
	return s != "" && unicode.IsDigit(rune(s[0]))
}
