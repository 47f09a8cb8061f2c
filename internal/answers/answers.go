// Package answers keeps a TOML sheet of known puzzle answers so that a run
// can report whether it reproduced them.
//
// The sheet has one table per day:
//
//	[day05]
//	part1 = 35
//	part2 = 46
package answers

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Known holds the recorded answers for one day. A nil part is unknown.
type Known struct {
	Part1 *int64 `toml:"part1,omitempty"`
	Part2 *int64 `toml:"part2,omitempty"`
}

func (k Known) part(n int) *int64 {
	switch n {
	case 1:
		return k.Part1
	case 2:
		return k.Part2
	}
	return nil
}

// Sheet maps a day name ("day05") to its known answers.
type Sheet map[string]Known

// Status is the outcome of comparing one answer with the sheet.
type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusMatch    Status = "match"
	StatusMismatch Status = "mismatch"
)

// Verdict is the comparison of one computed answer with the sheet.
type Verdict struct {
	Part   int    `json:"part"`
	Got    int64  `json:"got"`
	Want   int64  `json:"want,omitempty"` // zero when Status is StatusUnknown
	Status Status `json:"status"`
}

// Load reads the sheet at path. A missing file is an empty sheet.
func Load(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Sheet{}, nil
		}
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	var sheet Sheet
	if err := toml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	if sheet == nil {
		sheet = Sheet{}
	}
	return sheet, nil
}

// Save writes the sheet atomically (write temp + rename).
func Save(path string, sheet Sheet) error {
	data, err := toml.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("marshaling answers: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp answers file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming answers file: %w", err)
	}
	return nil
}

// Check compares got (part 1 first) against the sheet's entry for day.
func (s Sheet) Check(day string, got []int64) []Verdict {
	known := s[day]
	verdicts := make([]Verdict, len(got))
	for i, v := range got {
		part := i + 1
		verdict := Verdict{Part: part, Got: v, Status: StatusUnknown}
		if want := known.part(part); want != nil {
			verdict.Want = *want
			verdict.Status = StatusMismatch
			if *want == v {
				verdict.Status = StatusMatch
			}
		}
		verdicts[i] = verdict
	}
	return verdicts
}

// Set records got (part 1 first) as the known answers for day.
// Parts beyond the second are ignored.
func (s Sheet) Set(day string, got []int64) {
	var k Known
	if len(got) > 0 {
		v := got[0]
		k.Part1 = &v
	}
	if len(got) > 1 {
		v := got[1]
		k.Part2 = &v
	}
	s[day] = k
}
