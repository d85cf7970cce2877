package catmouse

import (
	"github.com/hidgames/classichid/led"
)

// Bite cycle phases, in ticks from the start of each cycle.
const (
	bitePeriod   = 23
	biteClosing  = 8
	biteCrushing = 11
	biteOpening  = 21

	biteIntensity = 0x66
)

// BiteAnimation plays the cat's jaws snapping shut over the ring: two
// symmetric spans grow from opposite sides until the ring is crushed,
// then open again, a fixed number of times. Once the bite counter runs
// out the animation reports Ended and paints nothing further.
type BiteAnimation struct {
	baseTicks uint64
	bitesLeft int
}

// NewBiteAnimation creates an animation of four bites starting at the
// given tick.
func NewBiteAnimation(ticks uint64) *BiteAnimation {
	return &BiteAnimation{baseTicks: ticks, bitesLeft: 4}
}

func (b *BiteAnimation) Reset(ticks uint64) {
	b.baseTicks = ticks
}

func (b *BiteAnimation) Update(ticks uint64, report *led.Report) led.Event {
	if b.bitesLeft == 0 {
		return led.Ended
	}

	dur := (ticks - b.baseTicks) % bitePeriod
	switch {
	case dur < biteClosing:
		amount := int(dur * 7 / biteClosing)
		report.SetSelection(led.Span(0, amount), biteIntensity)
		report.SetSelection(led.Span(12, amount), biteIntensity)
	case dur < biteCrushing:
		report.Fill(biteIntensity)
	case dur < biteOpening:
		amount := int((biteOpening - dur) * 7 / (biteOpening - biteCrushing))
		report.SetSelection(led.Span(0, amount), biteIntensity)
		report.SetSelection(led.Span(12, amount), biteIntensity)
	default:
		// jaws idle between bites
		if dur == bitePeriod-1 {
			b.bitesLeft--
		}
	}

	return led.Running
}
