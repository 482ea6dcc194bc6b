package nextrip

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDateTime(t *testing.T) {
	t.Run("extracts millisecond value", func(t *testing.T) {
		extracted, err := ExtractDateTime("/Date(1538971260000-0500)/")
		require.NoError(t, err)
		assert.Equal(t, "1538971260000", extracted)
	})

	t.Run("tolerates escaped slashes", func(t *testing.T) {
		extracted, err := ExtractDateTime(`\/Date(1538971260000-0500)\/`)
		require.NoError(t, err)
		assert.Equal(t, "1538971260000", extracted)
	})

	t.Run("accepts positive and missing offsets", func(t *testing.T) {
		extracted, err := ExtractDateTime("/Date(1538971260000+0100)/")
		require.NoError(t, err)
		assert.Equal(t, "1538971260000", extracted)

		extracted, err = ExtractDateTime("/Date(1538971260000)/")
		require.NoError(t, err)
		assert.Equal(t, "1538971260000", extracted)
	})

	malformed := []string{
		"",
		"1538971260000",
		"/Date1538971260000-0500/",
		"/Date(1538971260000-0500",
		"/Date(-0500)/",
		"/Date(abc-0500)/",
		"/Date(15389x71260000-0500)/",
	}

	for _, input := range malformed {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := ExtractDateTime(input)
			assert.ErrorIs(t, err, ErrInvalidDepartureTime)
		})
	}
}

func TestParseReferenceTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"epoch millis", "1538969940000", 1538969940000},
		{"surrounding whitespace", " 1538969940000 ", 1538969940000},
		{"compact with offset", "20181007234100-05:00", 1538973660000},
		{"compact without colon", "20181007234100-0500", 1538973660000},
		{"rfc3339", "2018-10-08T04:41:00Z", 1538973660000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReferenceTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects free text", func(t *testing.T) {
		_, err := ParseReferenceTime("tomorrow")
		assert.ErrorIs(t, err, ErrInvalidReferenceTime)
	})
}

func TestEstimator(t *testing.T) {
	t.Run("uses the provided reference time", func(t *testing.T) {
		label, err := Estimator{}.Estimate("/Date(1538971260000-0500)/", "1538969940000")
		require.NoError(t, err)
		assert.Equal(t, "22 Min", label)
	})

	t.Run("falls back to the clock", func(t *testing.T) {
		now := time.UnixMilli(1538969940000)
		estimator := Estimator{Now: func() time.Time { return now }}

		label, err := estimator.Estimate("/Date(1538971260000-0500)/", "")
		require.NoError(t, err)
		assert.Equal(t, "22 Min", label)
	})

	t.Run("falls back to wall clock when no clock is set", func(t *testing.T) {
		then := time.Now().Add(20*time.Minute + 30*time.Second).UnixMilli()

		label, err := Estimator{}.Estimate("/Date("+strconv.FormatInt(then, 10)+"-0500)/", "")
		require.NoError(t, err)
		assert.Equal(t, "20 Min", label)
	})

	t.Run("floors partial minutes", func(t *testing.T) {
		label, err := Estimator{}.Estimate("/Date(1538971259999-0500)/", "1538969940000")
		require.NoError(t, err)
		assert.Equal(t, "21 Min", label)
	})

	t.Run("past departures floor toward negative infinity", func(t *testing.T) {
		label, err := Estimator{}.Estimate("/Date(1538969939000-0500)/", "1538969940000")
		require.NoError(t, err)
		assert.Equal(t, "-1 Min", label)
	})

	t.Run("rejects malformed departure time", func(t *testing.T) {
		_, err := Estimator{}.Estimate("11:44", "1538969940000")
		assert.ErrorIs(t, err, ErrInvalidDepartureTime)
	})

	t.Run("rejects malformed reference time", func(t *testing.T) {
		_, err := Estimator{}.Estimate("/Date(1538971260000-0500)/", "soon")
		assert.ErrorIs(t, err, ErrInvalidReferenceTime)
	})
}
