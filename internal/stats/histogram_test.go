package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHistogram_Summary(t *testing.T) {
	h := NewHistogram()
	for i := 1; i <= 10; i++ {
		h.Record(time.Duration(i) * time.Millisecond)
	}

	s := h.Summary()

	assert.Equal(t, int64(10), s.Count)

	// HDR histograms answer within their significant figures, so allow
	// some binning tolerance.
	assert.InDelta(t, float64(time.Millisecond), float64(s.Min), float64(100*time.Microsecond))
	assert.InDelta(t, float64(10*time.Millisecond), float64(s.Max), float64(100*time.Microsecond))
	assert.InDelta(t, float64(5500*time.Microsecond), float64(s.Mean), float64(500*time.Microsecond))
	assert.InDelta(t, float64(5*time.Millisecond), float64(s.P50), float64(time.Millisecond))
	assert.InDelta(t, float64(10*time.Millisecond), float64(s.P99), float64(time.Millisecond))
}

func TestHistogram_ClampsOutOfRange(t *testing.T) {
	h := NewHistogram()
	h.Record(0)             // below the 1ns floor
	h.Record(2 * time.Hour) // above the 1h ceiling

	s := h.Summary()
	assert.Equal(t, int64(2), s.Count)
	hour := float64(time.Hour)
	assert.LessOrEqual(t, s.Max, time.Duration(hour*1.001))
}

func TestHistogram_Empty(t *testing.T) {
	s := NewHistogram().Summary()
	assert.Equal(t, int64(0), s.Count)
}
