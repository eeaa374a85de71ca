package window

import (
	"testing"
)

func checkDuration(t *testing.T, input string, expected int64) {
	minutes, err := ParseDuration(input)
	if err != nil {
		t.Errorf("ParseDuration(%q): %v", input, err)
	} else if minutes != expected {
		t.Errorf("ParseDuration(%q): expected %d minutes, got %d", input, expected, minutes)
	}
}

func checkDurationFails(t *testing.T, input string) {
	if minutes, err := ParseDuration(input); err == nil {
		t.Errorf("ParseDuration(%q): expected an error, got %d minutes", input, minutes)
	}
}

func TestParseDuration(t *testing.T) {
	checkDuration(t, "10m", 10)
	checkDuration(t, "2h", 120)
	checkDuration(t, "1d", 1440)
	checkDuration(t, "1h30m", 90)
	checkDuration(t, "2d12h20m", 3620)
	checkDuration(t, "0m", 0)
	// units may repeat and come in any order
	checkDuration(t, "10m10m", 20)
	checkDuration(t, "30m1h", 90)
}

func TestParseDurationFails(t *testing.T) {
	checkDurationFails(t, "")
	checkDurationFails(t, "10")     // trailing digits without a unit
	checkDurationFails(t, "10x")    // unsupported unit
	checkDurationFails(t, "2w")     // unsupported unit
	checkDurationFails(t, "m")      // unit without a value
	checkDurationFails(t, "h30m")   // leading unit without a value
	checkDurationFails(t, "1h 30m") // stray character
	checkDurationFails(t, "5m")     // not a multiple of 10
	checkDurationFails(t, "1h5m")   // total not a multiple of 10
}

func TestParseDurationOverflow(t *testing.T) {
	checkDurationFails(t, "99999999999999999999m")  // digits overflow int64
	checkDurationFails(t, "9223372036854775800d")   // unit multiplier overflows
	checkDurationFails(t, "9223372036854775800m1d") // running total overflows
	// huge but representable totals still parse; the range cap is the
	// resolver's concern
	checkDuration(t, "100000d", 144000000)
}
