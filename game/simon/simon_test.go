package simon_test

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidgames/classichid/game"
	"github.com/hidgames/classichid/game/simon"
	"github.com/hidgames/classichid/input"
	"github.com/hidgames/classichid/internal/simdev"
	"github.com/hidgames/classichid/led"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGame() (*simon.Game, *simdev.Device) {
	return simon.New(testLogger(), rand.New(rand.NewPCG(7, 11))), simdev.New()
}

// choiceArcs mirrors the documented LED layout: each direction owns a
// seven-LED arc with up at the top of the ring.
var choiceArcs = map[simon.Choice]led.Selection{
	simon.Up:    led.Arc(9, 16),
	simon.Right: led.Arc(15, 22),
	simon.Down:  led.Arc(21, 28),
	simon.Left:  led.Arc(3, 10),
}

var choiceSticks = map[simon.Choice]input.StickPosition{
	simon.Up:    input.Up,
	simon.Right: input.Right,
	simon.Down:  input.Down,
	simon.Left:  input.Left,
}

// shownChoice identifies which direction arc is currently lit at full
// intensity on the simulated ring.
func shownChoice(t *testing.T, dev *simdev.Device) simon.Choice {
	t.Helper()
	leds := dev.Leds()
	for c, sel := range choiceArcs {
		match := true
		for i := 0; i < led.RingSize; i++ {
			if (leds[i] == 0xFF) != sel[i] {
				match = false
				break
			}
		}
		if match {
			return c
		}
	}
	t.Fatalf("no direction arc fully lit: %v", leds)
	return 0
}

// run ticks the game from from to to inclusive, requiring it to keep
// running, and returns the next free tick.
func run(t *testing.T, g *simon.Game, dev *simdev.Device, from, to uint64) uint64 {
	t.Helper()
	for ticks := from; ticks <= to; ticks++ {
		ev, err := g.Update(dev, ticks)
		require.NoError(t, err)
		require.Equal(t, game.Running, ev)
	}
	return to + 1
}

func TestFujiLeavesFromIdle(t *testing.T) {
	g, dev := testGame()
	dev.SetButtonFuji(true)

	ev, err := g.Update(dev, 0)
	assert.NoError(t, err)
	assert.Equal(t, game.Ended, ev)
}

func TestMenuStartsARound(t *testing.T) {
	g, dev := testGame()
	run(t, g, dev, 0, 4)

	dev.SetButtonMenu(true)
	run(t, g, dev, 5, 5)
	dev.SetButtonMenu(false)

	// the preparation pause keeps the ring dark
	run(t, g, dev, 6, 20)
	assert.Equal(t, [led.RingSize]byte{}, dev.Leds())

	// the first item of the fresh two-item sequence plays once the pause
	// is over; during its sustain exactly one arc is fully lit
	run(t, g, dev, 21, 56)
	shownChoice(t, dev)
}

// startRound drives the game through the opening show phase and returns
// the two choices it displayed, leaving the game waiting for input.
func startRound(t *testing.T, g *simon.Game, dev *simdev.Device) (first, second simon.Choice, ticks uint64) {
	t.Helper()
	dev.SetButtonMenu(true)
	run(t, g, dev, 5, 5)
	dev.SetButtonMenu(false)

	run(t, g, dev, 6, 56)
	first = shownChoice(t, dev)

	run(t, g, dev, 57, 99)
	second = shownChoice(t, dev)

	return first, second, run(t, g, dev, 100, 122)
}

// play pushes the stick in the direction of a choice and releases it,
// committing the choice.
func play(t *testing.T, g *simon.Game, dev *simdev.Device, c simon.Choice, ticks uint64) uint64 {
	t.Helper()
	dev.MoveStick(choiceSticks[c])
	ticks = run(t, g, dev, ticks, ticks)
	dev.MoveStick(input.Center)
	return run(t, g, dev, ticks, ticks)
}

func TestRepeatingTheSequenceAdvancesALevel(t *testing.T) {
	g, dev := testGame()
	first, second, ticks := startRound(t, g, dev)

	ticks = play(t, g, dev, first, ticks)
	ticks = play(t, g, dev, second, ticks)

	// no mistake, no rattle
	assert.Empty(t, dev.Feedback())

	// the longer sequence is being shown again, starting with the same
	// first item
	run(t, g, dev, ticks, ticks+19)
	assert.Equal(t, first, shownChoice(t, dev))
}

func TestWrongChoiceEndsTheRound(t *testing.T) {
	g, dev := testGame()
	first, _, ticks := startRound(t, g, dev)

	wrong := simon.Choice((uint8(first) + 1) % 4)
	ticks = play(t, g, dev, wrong, ticks)

	// game over comes with a vibration cue
	assert.Equal(t, []byte{0x01, 0xCC, 0xBB, 0x00, 0x01, 0x00}, dev.LastFeedback())

	// once the game over animation runs out the vibration is cancelled
	// and the game is idling again
	run(t, g, dev, ticks, ticks+170)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, dev.LastFeedback())
}

func TestChoiceString(t *testing.T) {
	assert.Equal(t, "up", simon.Up.String())
	assert.Equal(t, "right", simon.Right.String())
	assert.Equal(t, "down", simon.Down.String())
	assert.Equal(t, "left", simon.Left.String())
}
