package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		source  Source
		wantErr bool
	}{
		{SourceCycle, false},
		{SourceMonotonic, false},
		{Source("wall"), true},
		{Source(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			c, err := New(tt.source)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestMonotonic_Duration(t *testing.T) {
	c := NewMonotonic()

	r1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	r2 := c.Now()

	d := c.Duration(r1, r2)
	if d < 5*time.Millisecond {
		t.Errorf("Duration = %v, want >= 5ms", d)
	}
}

func TestMonotonic_EqualReadingsAreZero(t *testing.T) {
	c := NewMonotonic()
	r := c.Now()
	assert.Equal(t, time.Duration(0), c.Duration(r, r))
}

func TestMonotonic_ReversedReadingsPanic(t *testing.T) {
	c := NewMonotonic()

	r1 := c.Now()
	time.Sleep(time.Millisecond)
	r2 := c.Now()

	assert.Panics(t, func() {
		c.Duration(r2, r1)
	})
}

func TestMonotonic_SetFrequencyIsNoOp(t *testing.T) {
	c := NewMonotonic()
	c.SetFrequency(12345)

	r1 := c.Now()
	time.Sleep(time.Millisecond)
	d := c.Duration(r1, c.Now())
	assert.GreaterOrEqual(t, d, time.Millisecond, "readings must stay in nanoseconds regardless of frequency")
}

func TestCycle_DurationScalesLinearly(t *testing.T) {
	c := &Cycle{}
	c.SetFrequency(1000) // 1 GHz: one tick per nanosecond

	base := c.Duration(Reading{raw: 1000}, Reading{raw: 3000})
	assert.Equal(t, 2000*time.Nanosecond, base)

	doubled := c.Duration(Reading{raw: 1000}, Reading{raw: 5000})
	assert.Equal(t, 2*base, doubled)
}

func TestCycle_DurationAtOtherFrequencies(t *testing.T) {
	tests := []struct {
		name    string
		freqMHz uint64
		ticks   uint64
		want    time.Duration
	}{
		{"2 GHz halves tick time", 2000, 2000, 1000 * time.Nanosecond},
		{"500 MHz doubles tick time", 500, 2000, 4000 * time.Nanosecond},
		{"24 MHz arm64 system counter", 24, 24, 1000 * time.Nanosecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cycle{}
			c.SetFrequency(tt.freqMHz)
			got := c.Duration(Reading{raw: 0}, Reading{raw: tt.ticks})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCycle_NoFrequencyPanics(t *testing.T) {
	c := &Cycle{}
	assert.Panics(t, func() {
		c.Duration(Reading{raw: 1}, Reading{raw: 2})
	})
}

func TestCycle_ReversedReadingsPanic(t *testing.T) {
	c := &Cycle{}
	c.SetFrequency(1000)
	assert.Panics(t, func() {
		c.Duration(Reading{raw: 10}, Reading{raw: 5})
	})
}

func TestNewCycle_AlwaysUsable(t *testing.T) {
	c := NewCycle()
	require.NotNil(t, c)

	// On architectures without a raw counter NewCycle hands back the
	// monotonic source, which needs no frequency.
	if !CycleCounterSupported() {
		r1 := c.Now()
		time.Sleep(time.Millisecond)
		assert.GreaterOrEqual(t, c.Duration(r1, c.Now()), time.Duration(0))
		return
	}

	c.SetFrequency(1000)
	r1 := c.Now()
	// Burn a little CPU so the counter definitely advances.
	x := 0
	for i := 0; i < 100000; i++ {
		x += i
	}
	_ = x
	r2 := c.Now()

	d := c.Duration(r1, r2)
	assert.Greater(t, d, time.Duration(0))
}
