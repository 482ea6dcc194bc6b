package nextrip

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/travigo/nextbus/pkg/util"
)

const millisPerMinute = 60 * 1000

var referenceTimeLayouts = []string{
	"20060102150405-07:00",
	"20060102150405-0700",
	time.RFC3339,
}

// ExtractDateTime pulls the epoch millisecond run out of the agency's
// "/Date(1538971260000-0500)/" wrapping
func ExtractDateTime(departureTime string) (string, error) {
	open := strings.IndexByte(departureTime, '(')
	if open < 0 {
		return "", fmt.Errorf("%w: %q has no opening parenthesis", ErrInvalidDepartureTime, departureTime)
	}

	rest := departureTime[open+1:]
	if !strings.Contains(rest, ")") {
		return "", fmt.Errorf("%w: %q has no closing parenthesis", ErrInvalidDepartureTime, departureTime)
	}

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}

	if end == 0 {
		return "", fmt.Errorf("%w: %q has no millisecond value", ErrInvalidDepartureTime, departureTime)
	}

	switch rest[end] {
	case '-', '+', ')':
	default:
		return "", fmt.Errorf("%w: %q has unexpected character %q", ErrInvalidDepartureTime, departureTime, rest[end])
	}

	return rest[:end], nil
}

// ParseReferenceTime reads an epoch millisecond value, or one of the
// timestamp layouts the command line accepts
func ParseReferenceTime(referenceTime string) (int64, error) {
	referenceTime = strings.TrimSpace(referenceTime)

	if millis, err := strconv.ParseInt(referenceTime, 10, 64); err == nil {
		return millis, nil
	}

	for _, layout := range referenceTimeLayouts {
		if parsed, err := time.Parse(layout, referenceTime); err == nil {
			return util.EpochMillis(parsed), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidReferenceTime, referenceTime)
}

// Estimator turns a scheduled departure into a minutes-until label
type Estimator struct {
	Now func() time.Time
}

// Estimate returns "<n> Min" for the wrapped departure timestamp, measured from
// referenceTime or from now when referenceTime is empty. Past departures give
// negative counts.
func (e Estimator) Estimate(departureTime string, referenceTime string) (string, error) {
	rawDeparture, err := ExtractDateTime(departureTime)
	if err != nil {
		return "", err
	}

	departureMillis, err := strconv.ParseInt(rawDeparture, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDepartureTime, err)
	}

	var referenceMillis int64
	if strings.TrimSpace(referenceTime) == "" {
		now := time.Now
		if e.Now != nil {
			now = e.Now
		}
		referenceMillis = util.EpochMillis(now())
	} else {
		referenceMillis, err = ParseReferenceTime(referenceTime)
		if err != nil {
			return "", err
		}
	}

	return FormatMinutes(MinutesUntil(departureMillis, referenceMillis)), nil
}

func MinutesUntil(departureMillis int64, referenceMillis int64) int64 {
	return util.FloorDiv(departureMillis-referenceMillis, millisPerMinute)
}

func FormatMinutes(minutes int64) string {
	return fmt.Sprintf("%d Min", minutes)
}
