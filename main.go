// Command aoc solves Advent of Code 2023 puzzles from their input files.
package main

import "github.com/papapumpkin/aoc2023/cmd"

func main() {
	cmd.Execute()
}
