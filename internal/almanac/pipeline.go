package almanac

import (
	"fmt"
	"iter"
	"strings"
)

// Item is a value tagged with the category it currently belongs to.
type Item struct {
	Category Category
	Value    int64
}

func (i Item) String() string {
	return fmt.Sprintf("%s(%d)", i.Category, i.Value)
}

// Pipeline is the ordered chain of stages. Each stage's From is the
// previous stage's To, and the first stage starts at Seed.
type Pipeline struct {
	Stages []Stage
}

// Final is the last category the pipeline converts into.
func (p Pipeline) Final() Category {
	if len(p.Stages) == 0 {
		return Seed
	}
	return p.Stages[len(p.Stages)-1].To
}

// stageFrom returns the index of the stage converting out of c, or -1.
func (p Pipeline) stageFrom(c Category) int {
	for i, s := range p.Stages {
		if s.From == c {
			return i
		}
	}
	return -1
}

// Chain yields start followed by every intermediate item down to the
// pipeline's final category. An item whose category no stage converts
// from yields only itself.
func (p Pipeline) Chain(start Item) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		if !yield(start) {
			return
		}
		first := p.stageFrom(start.Category)
		if first < 0 {
			return
		}
		cur := start
		for _, s := range p.Stages[first:] {
			cur = Item{Category: s.To, Value: s.Resolve(cur.Value)}
			if !yield(cur) {
				return
			}
		}
	}
}

// Convert runs start through the rest of the pipeline and returns the last item.
func (p Pipeline) Convert(start Item) Item {
	last := start
	for it := range p.Chain(start) {
		last = it
	}
	return last
}

// Trace renders the conversion chain of start, e.g. "SEED(79) -> SOIL(81)".
func (p Pipeline) Trace(start Item) string {
	var parts []string
	for it := range p.Chain(start) {
		parts = append(parts, it.String())
	}
	return strings.Join(parts, " -> ")
}
