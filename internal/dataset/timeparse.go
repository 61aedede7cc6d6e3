package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidTime is wrapped by every ParseTime failure.
var ErrInvalidTime = errors.New("invalid time")

// ParseTime normalizes a duration to seconds. It accepts plain seconds
// ("45.5") and the minutes:seconds form written by GNU time ("0:00.64", "1:30").
func ParseTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidTime)
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return 0, fmt.Errorf("%w: %q is not minutes:seconds", ErrInvalidTime, s)
		}
		minutes, err := parseFinite(parts[0])
		if err != nil {
			return 0, fmt.Errorf("%w: minutes of %q: %v", ErrInvalidTime, s, err)
		}
		seconds, err := parseFinite(parts[1])
		if err != nil {
			return 0, fmt.Errorf("%w: seconds of %q: %v", ErrInvalidTime, s, err)
		}
		return minutes*60 + seconds, nil
	}

	v, err := parseFinite(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTime, s, err)
	}
	return v, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return v, nil
}
