package catmouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidgames/classichid/led"
)

// ringOf flattens the report's ring bytes.
func ringOf(r *led.Report) []byte {
	return r.Bytes()[3 : 3+led.RingSize]
}

func TestBiteJawsCloseAndOpen(t *testing.T) {
	b := NewBiteAnimation(0)

	// the cycle opens with empty jaws
	report := led.NewReport()
	assert.Equal(t, led.Running, b.Update(0, &report))
	assert.Equal(t, make([]byte, led.RingSize), ringOf(&report))

	// halfway through the close, two spans grow from opposite sides
	report = led.NewReport()
	assert.Equal(t, led.Running, b.Update(4, &report))
	lit := map[int]bool{}
	for _, i := range []int{21, 22, 23, 0, 1, 2, 9, 10, 11, 12, 13, 14} {
		lit[i] = true
	}
	for i, v := range ringOf(&report) {
		if lit[i] {
			assert.Equal(t, byte(0x66), v, "led %d", i)
		} else {
			assert.Equal(t, byte(0x00), v, "led %d", i)
		}
	}

	// the crush fills the whole ring
	report = led.NewReport()
	assert.Equal(t, led.Running, b.Update(9, &report))
	for i, v := range ringOf(&report) {
		assert.Equal(t, byte(0x66), v, "led %d", i)
	}

	// opening again the spans shrink back
	report = led.NewReport()
	assert.Equal(t, led.Running, b.Update(15, &report))
	ring := ringOf(&report)
	assert.Equal(t, byte(0x66), ring[3])
	assert.Equal(t, byte(0x00), ring[4])
}

func TestBiteEndsAfterFourBites(t *testing.T) {
	b := NewBiteAnimation(0)

	for ticks := uint64(0); ticks < 4*bitePeriod; ticks++ {
		report := led.NewReport()
		require.Equal(t, led.Running, b.Update(ticks, &report), "tick %d", ticks)
	}

	report := led.NewReport()
	assert.Equal(t, led.Ended, b.Update(4*bitePeriod, &report))
	// an ended animation paints nothing
	assert.Equal(t, make([]byte, led.RingSize), ringOf(&report))
}

func TestBiteReset(t *testing.T) {
	b := NewBiteAnimation(0)
	b.Reset(100)

	report := led.NewReport()
	assert.Equal(t, led.Running, b.Update(100, &report))
	assert.Equal(t, make([]byte, led.RingSize), ringOf(&report))
}
