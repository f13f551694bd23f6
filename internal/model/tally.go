package model

// DiffTally accumulates numstat line counts.
type DiffTally struct {
	Added   int
	Deleted int
	Files   int
}

// Total returns added plus deleted lines.
func (t DiffTally) Total() int {
	return t.Added + t.Deleted
}
