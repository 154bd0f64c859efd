package driver

import "time"

// ProgressStatus reports where a file is in the ParseDir pipeline.
type ProgressStatus int

const (
	// ProgressQueued is sent once per file before any worker starts.
	ProgressQueued ProgressStatus = iota
	ProgressStart
	ProgressDone
)

func (s ProgressStatus) String() string {
	switch s {
	case ProgressQueued:
		return "queued"
	case ProgressStart:
		return "start"
	case ProgressDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProgressEvent describes one file transition.
type ProgressEvent struct {
	Index   int
	Total   int
	Path    string
	Status  ProgressStatus
	Errored bool
	Cached  bool
	Elapsed time.Duration
}

// ProgressFunc receives events from concurrent workers and must be goroutine-safe.
type ProgressFunc func(ProgressEvent)

func (f ProgressFunc) emit(ev ProgressEvent) {
	if f != nil {
		f(ev)
	}
}
