// Package game holds the types shared by the tick-driven games built on
// top of the classic controller protocol.
package game

// Event is what a game's Update reports back to the loop driving it.
type Event int

const (
	// Running means the game wants the loop to keep ticking.
	Running Event = iota
	// Ended means the player asked to leave; the loop should stop
	// calling Update.
	Ended
)

func (e Event) String() string {
	if e == Ended {
		return "ended"
	}
	return "running"
}
