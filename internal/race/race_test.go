package race

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/aoc2023/internal/input"
)

const sample = "Time:      7  15   30\nDistance:  9  40  200\n"

func TestCountWinning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		race Race
		want int64
	}{
		{Race{Time: 7, RecordDistance: 9}, 4},
		{Race{Time: 15, RecordDistance: 40}, 8},
		{Race{Time: 30, RecordDistance: 200}, 9},
		{Race{Time: 71530, RecordDistance: 940200}, 71503},
		{Race{Time: 0, RecordDistance: 0}, 0},
		{Race{Time: 4, RecordDistance: 4}, 0},
	}

	for _, tt := range tests {
		if got := CountWinning(tt.race); got != tt.want {
			t.Errorf("CountWinning(%+v) = %d, want %d", tt.race, got, tt.want)
		}
	}
}

func TestWins_Boundaries(t *testing.T) {
	t.Parallel()

	r := Race{Time: 7, RecordDistance: 9}
	for hold, want := range map[int64]bool{0: false, 1: false, 2: true, 5: true, 6: false, 7: false} {
		if got := r.Wins(hold); got != want {
			t.Errorf("Wins(%d) = %v, want %v", hold, got, want)
		}
	}
}

func TestWins_LargeTimesDoNotOverflow(t *testing.T) {
	t.Parallel()

	// 5e9 * 5e9 exceeds MaxInt64; the distance does not.
	r := Race{Time: 10_000_000_000, RecordDistance: 9_000_000_000_000_000_000}
	tests := []struct {
		hold int64
		want bool
	}{
		{5_000_000_000, true},
		{1_000_000_000, false}, // travels 9e18, a tie
		{1_000_000_001, true},
		{r.Time, false},
	}
	for _, tt := range tests {
		if got := r.Wins(tt.hold); got != tt.want {
			t.Errorf("Wins(%d) = %v, want %v", tt.hold, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("Columns", func(t *testing.T) {
		t.Parallel()
		races, err := Parse(input.FromString(sample), SeparateNumbers)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		want := []Race{{7, 9}, {15, 40}, {30, 200}}
		if diff := cmp.Diff(want, races); diff != "" {
			t.Errorf("races mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Kerned", func(t *testing.T) {
		t.Parallel()
		races, err := Parse(input.FromString(sample), KernedNumber)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		want := []Race{{71530, 940200}}
		if diff := cmp.Diff(want, races); diff != "" {
			t.Errorf("races mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{"Empty", "", ErrMissingLine, 0},
		{"OnlyTime", "Time: 7\n\n", ErrMissingLine, 0},
		{"WrongLabel", "Speed: 7\nDistance: 9\n", ErrMissingLine, 1},
		{"Swapped", "Distance: 9\nTime: 7\n", ErrMissingLine, 1},
		{"BadNumber", "Time: 7 x\nDistance: 9 1\n", ErrBadNumber, 1},
		{"Mismatched", "Time: 7 15\n\nDistance: 9\n", ErrMismatchedRaces, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(input.FromString(tt.input), SeparateNumbers)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
		})
	}
}

func TestSolve(t *testing.T) {
	t.Parallel()

	part1, part2, err := Solve(input.FromString(sample))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if part1 != 288 || part2 != 71503 {
		t.Errorf("Solve = %d, %d; want 288, 71503", part1, part2)
	}
}

func TestMargin_NoRaces(t *testing.T) {
	t.Parallel()

	if got := Margin(nil); got != 1 {
		t.Errorf("Margin(nil) = %d, want 1", got)
	}
}
