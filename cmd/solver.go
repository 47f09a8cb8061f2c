package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/aoc2023/internal/answers"
	"github.com/papapumpkin/aoc2023/internal/config"
	"github.com/papapumpkin/aoc2023/internal/input"
	"github.com/papapumpkin/aoc2023/internal/journal"
	"github.com/papapumpkin/aoc2023/internal/logging"
	"github.com/papapumpkin/aoc2023/internal/ui"
	"github.com/papapumpkin/aoc2023/internal/watch"
)

// puzzle is one day's solver. solve returns the answers, part 1 first.
type puzzle struct {
	day   string
	short string
	long  string
	solve func(env solveEnv, lines []input.Line) ([]int64, error)
}

// solveEnv is what a solver may consult besides its input.
type solveEnv struct {
	cfg    config.Config
	logger *zap.Logger
}

// puzzles is every registered day, keyed by its command name.
var puzzles = map[string]puzzle{}

func register(p puzzle) {
	puzzles[p.day] = p
	rootCmd.AddCommand(newPuzzleCmd(p))
}

func puzzleNames() []string {
	names := make([]string, 0, len(puzzles))
	for name := range puzzles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newPuzzleCmd(p puzzle) *cobra.Command {
	return &cobra.Command{
		Use:   p.day + " [input]",
		Short: p.short,
		Long:  p.long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := input.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			r, err := newRunner(p, path, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer r.close()

			if !r.cfg.Watch {
				_, err := r.once()
				return err
			}
			return r.watch(cmd.Context())
		},
	}
}

// runner carries everything one solver invocation needs.
type runner struct {
	p       puzzle
	path    string
	cfg     config.Config
	logger  *zap.Logger
	journal *journal.Journal
	printer *ui.Printer
	out     io.Writer
}

func newRunner(p puzzle, path string, out io.Writer) (*runner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, err
	}
	j, err := journal.Open(cfg.Journal)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &runner{
		p:       p,
		path:    path,
		cfg:     cfg,
		logger:  logger.With(zap.String("day", p.day)),
		journal: j,
		printer: ui.New(),
		out:     out,
	}, nil
}

func (r *runner) close() {
	if err := r.journal.Close(); err != nil {
		r.logger.Warn("closing journal", zap.Error(err))
	}
	_ = r.logger.Sync()
}

// once solves the input a single time, printing answers to out only after
// every part has been computed.
func (r *runner) once() ([]int64, error) {
	r.record(journal.Event{Kind: journal.KindRunStart, Day: r.p.day, Input: r.path})

	lines, err := input.ReadLines(r.path)
	if err != nil {
		return nil, r.fail(err)
	}
	got, err := r.p.solve(solveEnv{cfg: r.cfg, logger: r.logger}, lines)
	if err != nil {
		return nil, r.fail(err)
	}

	for i, v := range got {
		fmt.Fprintln(r.out, v)
		r.record(journal.Event{Kind: journal.KindAnswer, Day: r.p.day, Part: i + 1, Data: map[string]int64{"value": v}})
	}
	r.check(got)
	return got, nil
}

func (r *runner) fail(err error) error {
	err = fmt.Errorf("%s: %w", r.p.day, err)
	r.record(journal.Event{Kind: journal.KindRunError, Day: r.p.day, Input: r.path, Data: map[string]string{"error": err.Error()}})
	return err
}

// answersPath resolves the answers file next to the input unless absolute.
func (r *runner) answersPath() string {
	if filepath.IsAbs(r.cfg.AnswersFile) {
		return r.cfg.AnswersFile
	}
	return filepath.Join(filepath.Dir(r.path), r.cfg.AnswersFile)
}

// check compares got with the answers file. Problems reading the file are
// reported but never fail the run.
func (r *runner) check(got []int64) {
	sheet, err := answers.Load(r.answersPath())
	if err != nil {
		r.logger.Warn("skipping answer check", zap.Error(err))
		r.printer.Error(err.Error())
		return
	}
	if _, ok := sheet[r.p.day]; !ok {
		return
	}
	verdicts := sheet.Check(r.p.day, got)
	r.printer.Verdicts(verdicts)
	for _, v := range verdicts {
		r.record(journal.Event{Kind: journal.KindCheck, Day: r.p.day, Part: v.Part, Data: v})
	}
}

func (r *runner) record(evt journal.Event) {
	if err := r.journal.Record(evt); err != nil {
		r.logger.Warn("journal write failed", zap.Error(err))
	}
}

// watch solves once, then again on every settled change to the input,
// until ctx is cancelled or the process is interrupted. Solve errors are
// printed and the loop keeps going.
func (r *runner) watch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := watch.New(r.path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	r.printer.Solving(r.p.day, r.path)
	if _, err := r.once(); err != nil {
		r.printer.Error(err.Error())
	}
	r.printer.Watching(r.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			r.record(journal.Event{Kind: journal.KindInputChanged, Day: r.p.day, Input: r.path, Data: change})
			if change.Removed {
				r.printer.InputRemoved(r.path)
				continue
			}
			r.printer.InputChanged(r.path)
			if _, err := r.once(); err != nil {
				r.printer.Error(err.Error())
			}
		}
	}
}
