package cmd

import (
	"github.com/papapumpkin/aoc2023/internal/input"
	"github.com/papapumpkin/aoc2023/internal/race"
)

func init() {
	register(puzzle{
		day:   "day06",
		short: "Count ways to win the boat races (day 6)",
		long: `Reads a Time line and a Distance line. Prints the product of the number
of winning button holds per race, then the same count with all columns read
as one long race.`,
		solve: solveDay06,
	})
}

func solveDay06(_ solveEnv, lines []input.Line) ([]int64, error) {
	part1, part2, err := race.Solve(lines)
	if err != nil {
		return nil, err
	}
	return []int64{part1, part2}, nil
}
