package window

import (
	"fmt"
	"math"
)

// ErrInvalidDuration is an error parsing a compact duration expression
type ErrInvalidDuration struct {
	Input  string
	Reason string
}

func (e ErrInvalidDuration) Error() string {
	return fmt.Sprintf("invalid duration %q: %s", e.Input, e.Reason)
}

// minute multipliers of the supported units
var unitMinutes = map[byte]int64{'m': 1, 'h': 60, 'd': 1440}

// ParseDuration parses a compact duration expression like "2d12h20m" into a
// total number of minutes. The total must be a multiple of 10 minutes, the
// cadence at which the CDN publishes full-disk frames.
func ParseDuration(input string) (int64, error) {
	if input == "" {
		return 0, ErrInvalidDuration{input, "empty"}
	}

	var total, num int64
	hasNum := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c >= '0' && c <= '9' {
			if num > (math.MaxInt64-int64(c-'0'))/10 {
				return 0, ErrInvalidDuration{input, "value too large"}
			}
			num = num*10 + int64(c-'0')
			hasNum = true
			continue
		}
		if !hasNum {
			return 0, ErrInvalidDuration{input, fmt.Sprintf("malformed expression at %q", string(c))}
		}
		mul, ok := unitMinutes[c]
		if !ok {
			return 0, ErrInvalidDuration{input, fmt.Sprintf("unsupported unit %q, use m, h or d", string(c))}
		}
		if num > math.MaxInt64/mul || total > math.MaxInt64-num*mul {
			return 0, ErrInvalidDuration{input, "value too large"}
		}
		total += num * mul
		num, hasNum = 0, false
	}
	if hasNum {
		return 0, ErrInvalidDuration{input, "missing unit after trailing digits"}
	}

	if total%10 != 0 {
		return 0, ErrInvalidDuration{input, "must be a multiple of 10 minutes"}
	}
	return total, nil
}
