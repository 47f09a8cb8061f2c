package almanac

import (
	"fmt"
	"iter"
)

// Strategy selects how range seeds are aggregated.
type Strategy string

const (
	// StrategyIntervals pushes whole intervals through each stage.
	StrategyIntervals Strategy = "intervals"
	// StrategyBrute converts every seed in every range one at a time.
	StrategyBrute Strategy = "brute"
)

// ParseStrategy validates a strategy name. The empty string selects intervals.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyIntervals:
		return StrategyIntervals, nil
	case StrategyBrute:
		return StrategyBrute, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidStrategy, s, StrategyIntervals, StrategyBrute)
}

// MinLocation converts every seed value through p and returns the lowest
// final value.
func MinLocation(p Pipeline, seeds iter.Seq[int64]) (int64, error) {
	var best int64
	found := false
	for v := range seeds {
		loc := p.Convert(Item{Category: Seed, Value: v}).Value
		if !found || loc < best {
			best = loc
			found = true
		}
	}
	if !found {
		return 0, ErrNoSeeds
	}
	return best, nil
}

// span is the half-open interval [start, end).
type span struct {
	start, end int64
}

// MinLocationOfRanges returns what MinLocation over Expand(ranges) returns,
// without visiting each seed: whole intervals are split at rule boundaries
// and shifted stage by stage.
func MinLocationOfRanges(p Pipeline, ranges []SeedRange) (int64, error) {
	spans := make([]span, 0, len(ranges))
	for _, r := range ranges {
		if r.Length > 0 {
			spans = append(spans, span{start: r.Start, end: r.End()})
		}
	}
	if len(spans) == 0 {
		return 0, ErrNoSeeds
	}

	for _, s := range p.Stages {
		spans = resolveSpans(s, spans)
	}

	best := spans[0].start
	for _, sp := range spans[1:] {
		best = min(best, sp.start)
	}
	return best, nil
}

// resolveSpans maps spans through one stage. Rules are taken in order so
// that a value claimed by an earlier rule is never remapped by a later one,
// which matches Stage.Resolve.
func resolveSpans(s Stage, spans []span) []span {
	var out []span
	pending := spans
	for _, r := range s.Rules {
		if r.Length <= 0 {
			continue
		}
		var rest []span
		for _, sp := range pending {
			lo := max(sp.start, r.SourceStart)
			hi := min(sp.end, r.SourceEnd())
			if lo >= hi {
				rest = append(rest, sp)
				continue
			}
			out = append(out, span{start: r.Apply(lo), end: r.Apply(hi)})
			if sp.start < lo {
				rest = append(rest, span{start: sp.start, end: lo})
			}
			if hi < sp.end {
				rest = append(rest, span{start: hi, end: sp.end})
			}
		}
		pending = rest
	}
	// Whatever no rule claimed maps to itself.
	return append(out, pending...)
}

// Solve returns part 1 (seeds as a flat list) and part 2 (seeds as ranges).
func Solve(a *Almanac, strategy Strategy) (part1, part2 int64, err error) {
	part1, err = MinLocation(a.Pipeline, a.Seeds.Values())
	if err != nil {
		return 0, 0, fmt.Errorf("part 1: %w", err)
	}

	ranges, err := a.Seeds.Ranges()
	if err != nil {
		return 0, 0, fmt.Errorf("part 2: %w", err)
	}
	switch strategy {
	case StrategyBrute:
		part2, err = MinLocation(a.Pipeline, Expand(ranges))
	default:
		part2, err = MinLocationOfRanges(a.Pipeline, ranges)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("part 2: %w", err)
	}
	return part1, part2, nil
}
