package led

// Default envelope parameters shared by the pulsating animations.
const (
	defaultPeriod = 128
	defaultMax    = 0xFF
)

// RotatingLed walks a single fully lit LED around the ring, one step
// every 20 ticks. It is a pure function of the tick and never ends.
type RotatingLed struct{}

func (RotatingLed) Reset(uint64) {}

func (RotatingLed) Update(ticks uint64, report *Report) Event {
	report.Set(int(ticks/20%RingSize), 0xFF)
	return Running
}

// OneWayPulsate ramps the selected LEDs from ValueMin to ValueMax over
// TickPeriod ticks, snaps back and repeats. It never ends.
type OneWayPulsate struct {
	Selection  Selection
	TickPeriod uint64
	ValueMin   uint8
	ValueMax   uint8
}

// NewOneWayPulsate creates a sawtooth pulse over the whole ring with the
// default period and full intensity range.
func NewOneWayPulsate() *OneWayPulsate {
	return &OneWayPulsate{
		Selection:  All(),
		TickPeriod: defaultPeriod,
		ValueMax:   defaultMax,
	}
}

// NewOneWayPulsateWith creates a sawtooth pulse with explicit parameters.
func NewOneWayPulsateWith(sel Selection, period uint64, min, max uint8) *OneWayPulsate {
	return &OneWayPulsate{Selection: sel, TickPeriod: period, ValueMin: min, ValueMax: max}
}

func (p *OneWayPulsate) Reset(uint64) {}

func (p *OneWayPulsate) Update(ticks uint64, report *Report) Event {
	period := p.TickPeriod
	if period == 0 {
		period = defaultPeriod
	}
	phase := ticks % period
	value := p.ValueMin + uint8(phase*uint64(p.ValueMax-p.ValueMin)/period)
	report.SetSelection(p.Selection, value)
	return Running
}

// Pulsate ramps the selected LEDs from ValueMin up to ValueMax and back
// down over one TickPeriod: a triangle wave peaking at the half period.
// It never ends.
type Pulsate struct {
	Selection  Selection
	TickPeriod uint64
	ValueMin   uint8
	ValueMax   uint8
}

// NewPulsate creates a triangle pulse over the whole ring with the
// default period and full intensity range.
func NewPulsate() *Pulsate {
	return &Pulsate{
		Selection:  All(),
		TickPeriod: defaultPeriod,
		ValueMax:   defaultMax,
	}
}

// NewPulsateWith creates a triangle pulse with explicit parameters.
func NewPulsateWith(sel Selection, period uint64, min, max uint8) *Pulsate {
	return &Pulsate{Selection: sel, TickPeriod: period, ValueMin: min, ValueMax: max}
}

func (p *Pulsate) Reset(uint64) {}

func (p *Pulsate) Update(ticks uint64, report *Report) Event {
	period := p.TickPeriod
	if period == 0 {
		period = defaultPeriod
	}
	phase := ticks % period
	half := period / 2
	span := uint64(p.ValueMax - p.ValueMin)

	var value uint8
	switch {
	case half == 0 || phase == half:
		value = p.ValueMax
	case phase < half:
		value = p.ValueMin + uint8(phase*span/half)
	default:
		value = p.ValueMax - uint8((phase-half)*span/(period-half))
	}
	report.SetSelection(p.Selection, value)
	return Running
}

// Asr is a one-shot attack-sustain-release envelope: a linear rise to
// full intensity, a hold, and a decay. The decay is the bitwise
// complement of a rising ramp, which starts fast and finishes slow;
// this exact curve is relied on by the games and is kept as-is rather
// than replaced with a linear fade.
//
// After the release elapses the selection is forced dark and the
// animation reports Ended; re-arm it with Reset before reusing it.
type Asr struct {
	Selection    Selection
	TicksAttack  uint64
	TicksSustain uint64
	TicksRelease uint64

	baseTick uint64
}

// NewAsr creates an envelope over the given selection with the default
// 20/60/20 phase durations.
func NewAsr(sel Selection) *Asr {
	return &Asr{
		Selection:    sel,
		TicksAttack:  20,
		TicksSustain: 60,
		TicksRelease: 20,
	}
}

// NewAsrWith creates an envelope with explicit phase durations.
func NewAsrWith(sel Selection, attack, sustain, release uint64) *Asr {
	return &Asr{
		Selection:    sel,
		TicksAttack:  attack,
		TicksSustain: sustain,
		TicksRelease: release,
	}
}

func (a *Asr) Reset(ticks uint64) {
	a.baseTick = ticks
}

func (a *Asr) Update(ticks uint64, report *Report) Event {
	dur := ticks - a.baseTick

	switch {
	case dur < a.TicksAttack:
		report.SetSelection(a.Selection, uint8(dur*255/a.TicksAttack))
		return Running
	case dur < a.TicksAttack+a.TicksSustain:
		report.SetSelection(a.Selection, 0xFF)
		return Running
	case dur < a.TicksAttack+a.TicksSustain+a.TicksRelease:
		d := dur - a.TicksAttack - a.TicksSustain
		report.SetSelection(a.Selection, ^uint8(d*255/a.TicksRelease))
		return Running
	default:
		report.SetSelection(a.Selection, 0)
		return Ended
	}
}
