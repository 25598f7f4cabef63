package skills

import "time"

// Record is a single named proficiency entry together with the evidence
// collected for it: submitted code, attempt history, revision count, and an
// externally supplied originality flag.
type Record struct {
	Name              string
	Score             float64
	CodeSnippets      []string
	AttemptTimestamps []time.Time
	IterationDepth    *int
	Flagged           *bool
}

// IsFlagged reports whether the record is under suspicion of non-original
// authorship. The flag is supplied by the assessment source, never computed.
func (r *Record) IsFlagged() bool {
	return r.Flagged != nil && *r.Flagged
}

// Clone returns a deep copy of the record so callers cannot mutate the
// store's authoritative slices through a snapshot.
func (r Record) Clone() Record {
	c := r
	if r.CodeSnippets != nil {
		c.CodeSnippets = make([]string, len(r.CodeSnippets))
		copy(c.CodeSnippets, r.CodeSnippets)
	}
	if r.AttemptTimestamps != nil {
		c.AttemptTimestamps = make([]time.Time, len(r.AttemptTimestamps))
		copy(c.AttemptTimestamps, r.AttemptTimestamps)
	}
	if r.IterationDepth != nil {
		d := *r.IterationDepth
		c.IterationDepth = &d
	}
	if r.Flagged != nil {
		f := *r.Flagged
		c.Flagged = &f
	}
	return c
}
