package common

import (
	"fmt"
	"time"
)

// CompactLayout renders a UTC timestamp as YYYYMMDDThhmmss (e.g. 20241130T080000).
// It names the per-run output directory and the saved snapshot files.
const CompactLayout = "20060102T150405"

// FormatCompact renders t in the compact UTC layout.
func FormatCompact(t time.Time) string {
	return t.UTC().Format(CompactLayout)
}

// FormatFrameID renders the CDN frame identifier for t: year, day of year,
// hour and minute (e.g. 20243350830 for 2024-11-30T08:30Z).
func FormatFrameID(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d%03d%02d%02d", t.Year(), t.YearDay(), t.Hour(), t.Minute())
}
