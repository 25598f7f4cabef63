package skills

import (
	"errors"
	"math"
	"strconv"
)

// Score domain bounds, inclusive.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

var (
	// ErrNotNumeric indicates input that does not parse to a finite number.
	// In-progress input (empty string, a bare ".") falls in this bucket;
	// callers should hold the edit open rather than treat it as fatal.
	ErrNotNumeric = errors.New("score is not a number")

	// ErrOutOfRange indicates a numeric value outside [0, 10].
	ErrOutOfRange = errors.New("score must be between 0 and 10")
)

// ParseScore converts raw user input into a valid score. It accepts digits,
// at most one decimal point, and an optional leading minus (so out-of-range
// negatives report as such rather than as garbage). The returned value is
// unrounded; display rounding is the caller's concern. Pure and cheap enough
// to call on every keystroke.
func ParseScore(raw string) (float64, error) {
	if raw == "" {
		return 0, ErrNotNumeric
	}

	dots := 0
	for i, c := range raw {
		switch {
		case c >= '0' && c <= '9':
		case c == '.':
			dots++
			if dots > 1 {
				return 0, ErrNotNumeric
			}
		case c == '-' && i == 0:
		default:
			return 0, ErrNotNumeric
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumeric
	}
	if v < MinScore || v > MaxScore {
		return 0, ErrOutOfRange
	}
	return v, nil
}

// ClampScore forces v into the [MinScore, MaxScore] interval.
func ClampScore(v float64) float64 {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
