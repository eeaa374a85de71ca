// Package window resolves user-supplied time expressions into the aligned
// snapshot time range of one archiver run.
package window

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// the CDN publishes full-disk frames every 10 minutes
	alignMinutes = 10
	// maxLookback bounds how far back a single run may reach
	maxLookback = 5 * 24 * time.Hour
)

// ErrBadWindow is an error validating the requested time window
type ErrBadWindow struct {
	Reason string
}

func (e ErrBadWindow) Error() string {
	return "invalid time window: " + e.Reason
}

// Options are the raw user-supplied window parameters. Exactly one of Start
// and Ago must be set.
type Options struct {
	Start         string // absolute start time, e.g. 2024-11-30T12:00:00Z
	Ago           string // start offset back from now, e.g. "2d12h20m"
	Duration      string // window length, e.g. "2h" (empty: until now)
	StrideMinutes int
}

// ResolvedWindow is a validated snapshot time range: Start <= End, End not in
// the future, both aligned to a 10-minute boundary, Stride a positive
// multiple of 10 minutes.
type ResolvedWindow struct {
	Start  time.Time
	End    time.Time
	Stride time.Duration
}

// StrideMinutes returns the stride in whole minutes.
func (w ResolvedWindow) StrideMinutes() int {
	return int(w.Stride / time.Minute)
}

// AlignDown rounds t down to the previous 10-minute boundary in UTC, zeroing
// seconds and below.
func AlignDown(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/alignMinutes*alignMinutes, 0, 0, time.UTC)
}

// Resolve validates the requested window against now and returns the aligned
// time range. It is a pure function of its inputs: all side effects
// (directory creation, network) happen after a window resolved successfully.
func Resolve(opts Options, now time.Time) (ResolvedWindow, error) {
	now = now.UTC()

	var start time.Time
	switch {
	case opts.Start != "" && opts.Ago != "":
		return ResolvedWindow{}, ErrBadWindow{"specify either a start time or an offset from now, not both"}
	case opts.Start != "":
		t, err := dateparse.ParseIn(opts.Start, time.UTC)
		if err != nil {
			return ResolvedWindow{}, ErrBadWindow{fmt.Sprintf("bad start time %q: %v", opts.Start, err)}
		}
		start = t.UTC()
	case opts.Ago != "":
		minutes, err := ParseDuration(opts.Ago)
		if err != nil {
			return ResolvedWindow{}, ErrBadWindow{err.Error()}
		}
		start = AlignDown(now.Add(-time.Duration(minutes) * time.Minute))
	default:
		return ResolvedWindow{}, ErrBadWindow{"a start time or an offset from now is required"}
	}

	if now.Sub(start) > maxLookback {
		return ResolvedWindow{}, ErrBadWindow{"start time is too far in the past (maximum range is 5 days)"}
	}

	var end time.Time
	if opts.Duration != "" {
		minutes, err := ParseDuration(opts.Duration)
		if err != nil {
			return ResolvedWindow{}, ErrBadWindow{err.Error()}
		}
		end = AlignDown(start.Add(time.Duration(minutes) * time.Minute))
	} else {
		end = AlignDown(now)
	}
	if end.After(now) {
		return ResolvedWindow{}, ErrBadWindow{fmt.Sprintf("end time (%s) is in the future", end.Format(time.RFC3339))}
	}
	if start.After(end) {
		return ResolvedWindow{}, ErrBadWindow{fmt.Sprintf("start time (%s) is after the end time (%s)", start.Format(time.RFC3339), end.Format(time.RFC3339))}
	}

	if opts.StrideMinutes <= 0 || opts.StrideMinutes%alignMinutes != 0 {
		return ResolvedWindow{}, ErrBadWindow{fmt.Sprintf("stride (%d) must be a positive multiple of 10", opts.StrideMinutes)}
	}

	return ResolvedWindow{
		Start:  start,
		End:    end,
		Stride: time.Duration(opts.StrideMinutes) * time.Minute,
	}, nil
}
