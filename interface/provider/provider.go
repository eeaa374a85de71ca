package provider

import (
	"time"
)

// SnapshotProvider is the interface of an imagery snapshot source
type SnapshotProvider interface {
	// SnapshotURL returns the remote URL of the snapshot captured at t
	// t must be aligned to the cadence the source publishes at
	SnapshotURL(t time.Time) (string, error)

	// Name of the provider
	Name() string
}
