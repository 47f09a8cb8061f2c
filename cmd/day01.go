package cmd

import (
	"github.com/papapumpkin/aoc2023/internal/calibration"
	"github.com/papapumpkin/aoc2023/internal/input"
)

func init() {
	register(puzzle{
		day:   "day01",
		short: "Sum calibration values (day 1)",
		long: `Reads one calibration line per row and prints the sum of their values.
A line's value is its first and last digit, where digits may be spelled
out ("one" through "nine") and spelled digits may overlap.`,
		solve: solveDay01,
	})
}

func solveDay01(_ solveEnv, lines []input.Line) ([]int64, error) {
	sum, err := calibration.Sum(lines)
	if err != nil {
		return nil, err
	}
	return []int64{int64(sum)}, nil
}
