package led

// Event reports whether an animation wants further updates.
type Event int

const (
	// Running means the animation expects more update calls.
	Running Event = iota
	// Ended means the animation is done and must not be updated again
	// until it is re-armed with Reset.
	Ended
)

func (e Event) String() string {
	if e == Ended {
		return "ended"
	}
	return "running"
}

// Animation is a tick-driven effect painted onto LED reports.
//
// Ticks are a monotonic logical counter supplied by the caller, never
// wall-clock time, so every animation is deterministic and replayable
// from a fixed tick sequence.
type Animation interface {
	// Reset rebases the animation's origin to the given tick. Stateless
	// animations treat this as a no-op.
	Reset(ticks uint64)

	// Update applies the animation's current frame to the report and
	// reports whether it is still running.
	Update(ticks uint64, report *Report) Event
}
