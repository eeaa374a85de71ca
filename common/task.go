package common

import "time"

// FetchTask is one snapshot to retrieve and persist. Each task is consumed by
// exactly one fetch unit; Dir is shared read-only between tasks.
type FetchTask struct {
	Timestamp time.Time
	Dir       string
}

// FetchOutcome is the terminal result of one FetchTask, labeled by the task's
// timestamp so outcomes can be reconciled regardless of completion order.
// Either Path (success) or Err (failure) is set.
type FetchOutcome struct {
	Timestamp time.Time
	Path      string
	Err       error
}

// Saved returns whether the snapshot was retrieved and persisted.
func (o FetchOutcome) Saved() bool {
	return o.Err == nil
}
