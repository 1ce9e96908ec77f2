package normalize

// Status is the outcome of processing one file.
type Status int

const (
	// StatusOK means the file was normalized and written.
	StatusOK Status = iota
	// StatusSkipped means the file was valid but not normalizable
	// (no scenes, degenerate geometry) and was left untouched.
	StatusSkipped
	// StatusFailed means loading or writing the file failed.
	StatusFailed
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult records the outcome of one file in a batch.
type FileResult struct {
	Name   string
	Status Status
	Reason string // skip reason or error text, empty for StatusOK
	Report Report // valid only for StatusOK
}

// Summary aggregates a batch run.
type Summary struct {
	Total   int
	OK      int
	Skipped int
	Failed  int
}

func summarize(results []FileResult) *Summary {
	s := &Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			s.OK++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
