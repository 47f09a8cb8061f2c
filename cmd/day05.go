package cmd

import (
	"go.uber.org/zap"

	"github.com/papapumpkin/aoc2023/internal/almanac"
	"github.com/papapumpkin/aoc2023/internal/input"
)

func init() {
	register(puzzle{
		day:   "day05",
		short: "Find the lowest seed location (day 5)",
		long: `Reads a seed almanac and converts seeds through every map down to a
location. Prints the lowest location for the seeds read as a list, then for
the seeds read as (start, length) ranges.

AOC_STRATEGY=brute converts range seeds one by one instead of as intervals.
AOC_DEBUG=1 logs the conversion chain of every listed seed.`,
		solve: solveDay05,
	})
}

func solveDay05(env solveEnv, lines []input.Line) ([]int64, error) {
	a, err := almanac.Parse(lines)
	if err != nil {
		return nil, err
	}
	strategy, err := almanac.ParseStrategy(env.cfg.Strategy)
	if err != nil {
		return nil, err
	}

	env.logger.Debug("parsed almanac",
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("stages", len(a.Pipeline.Stages)),
		zap.Stringer("final", a.Pipeline.Final()),
		zap.String("strategy", string(strategy)))
	if env.logger.Core().Enabled(zap.DebugLevel) {
		for v := range a.Seeds.Values() {
			env.logger.Debug("conversion", zap.String("chain", a.Pipeline.Trace(almanac.Item{Category: almanac.Seed, Value: v})))
		}
	}

	part1, part2, err := almanac.Solve(a, strategy)
	if err != nil {
		return nil, err
	}
	return []int64{part1, part2}, nil
}
