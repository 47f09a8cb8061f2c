package almanac

// IntervalRule maps the half-open source interval
// [SourceStart, SourceStart+Length) onto [DestStart, DestStart+Length).
type IntervalRule struct {
	DestStart   int64
	SourceStart int64
	Length      int64
}

// SourceEnd is the first value past the source interval.
func (r IntervalRule) SourceEnd() int64 {
	return r.SourceStart + r.Length
}

// Contains reports whether v lies in the rule's source interval.
func (r IntervalRule) Contains(v int64) bool {
	return v >= r.SourceStart && v-r.SourceStart < r.Length
}

// Apply shifts v by the rule's offset. It does not check Contains.
func (r IntervalRule) Apply(v int64) int64 {
	return r.DestStart + (v - r.SourceStart)
}

// Stage converts values of one category into the next.
type Stage struct {
	From  Category
	To    Category
	Rules []IntervalRule
}

// Resolve maps v through the first rule containing it.
// Values covered by no rule map to themselves.
func (s Stage) Resolve(v int64) int64 {
	for _, r := range s.Rules {
		if r.Contains(v) {
			return r.Apply(v)
		}
	}
	return v
}
