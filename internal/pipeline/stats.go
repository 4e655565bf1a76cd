package pipeline

// RunStats tracks aggregate counters across a single run.
type RunStats struct {
	Scanned int // Entries in the catalog after exclusions.
	Kept    int // Entries surviving duration filtering.
	Planned int // Renames in the emitted plan.
	Dirs    int // Directories the plan needs created.
}

// Dropped returns how many kept entries the input pattern rejected.
func (s *RunStats) Dropped() int {
	return s.Kept - s.Planned
}
