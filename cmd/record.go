package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/aoc2023/internal/answers"
	"github.com/papapumpkin/aoc2023/internal/input"
)

var recordCmd = &cobra.Command{
	Use:   "record <day> [input]",
	Short: "Solve a day and store its answers as the known answers",
	Long: `Solves the given day like its own subcommand, then writes the answers to
the answers file (AOC_ANSWERS_FILE, default answers.toml next to the input).
Later runs of that day report whether they reproduce them.`,
	Args: cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		return puzzleNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	p, ok := puzzles[args[0]]
	if !ok {
		return fmt.Errorf("unknown day %q (want one of %s)", args[0], strings.Join(puzzleNames(), ", "))
	}
	path := input.DefaultPath
	if len(args) == 2 {
		path = args[1]
	}

	r, err := newRunner(p, path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer r.close()

	got, err := r.once()
	if err != nil {
		return err
	}

	sheetPath := r.answersPath()
	sheet, err := answers.Load(sheetPath)
	if err != nil {
		return err
	}
	sheet.Set(p.day, got)
	if err := answers.Save(sheetPath, sheet); err != nil {
		return err
	}
	r.printer.Recorded(p.day, sheetPath)
	return nil
}
