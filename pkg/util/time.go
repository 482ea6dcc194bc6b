package util

import (
	"time"
)

func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FloorDiv divides rounding toward negative infinity rather than toward zero
func FloorDiv(a int64, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
