// Package catmouse implements a chase game on the classic controller:
// the paddle steers a mouse around a circular track, glowing cheese
// scores points, and a cat closes in a little faster every few pieces.
package catmouse

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hidgames/classichid/device"
	"github.com/hidgames/classichid/feedback"
	"github.com/hidgames/classichid/game"
	"github.com/hidgames/classichid/input"
	"github.com/hidgames/classichid/led"
)

const (
	// trackSize is the length of the circular track the game is played
	// on; positions map onto the 24 LEDs via positionToLed.
	trackSize = 1024

	// collisionRange is how close two positions must be to count as
	// touching.
	collisionRange = 16

	// Spawn distances and the cap on rejection sampling attempts.
	cheeseMinDistance = 100
	catMinDistance    = 400
	spawnAttempts     = 20

	gameOverTicks = 180
)

type gameState interface{ catMouseState() }

type stateIdle struct{ baseTicks uint64 }
type stateReady struct{}
type statePlaying struct {
	mousePosition  int
	cheesePosition int
	catPosition    int
	catSpeed       int
}
type stateGameOver struct {
	baseTicks uint64
	animation *BiteAnimation
}

func (stateIdle) catMouseState()     {}
func (stateReady) catMouseState()    {}
func (statePlaying) catMouseState()  {}
func (stateGameOver) catMouseState() {}

// Game is a game of cat and mouse. It owns its state exclusively;
// Update must be called from a single loop, once per tick.
type Game struct {
	logger *slog.Logger
	rng    *rand.Rand
	score  int
	state  gameState
}

// New creates a game in the idle state. A nil logger falls back to the
// default logger; a nil rng falls back to a time-seeded source.
func New(logger *slog.Logger, rng *rand.Rand) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Game{
		logger: logger,
		rng:    rng,
		state:  stateIdle{},
	}
}

// Score returns the number of cheese pieces eaten this round.
func (g *Game) Score() int {
	return g.score
}

// Reset zeroes the score and returns to the idle demo.
func (g *Game) Reset(ticks uint64) {
	g.score = 0
	g.state = stateIdle{baseTicks: ticks}
}

// Update advances the game by one tick, consuming pending input and
// repainting the LEDs. It returns game.Ended when the player leaves via
// the Fuji button.
func (g *Game) Update(dev device.Device, ticks uint64) (game.Event, error) {
	switch st := g.state.(type) {
	case stateIdle:
		return g.updateIdle(dev, ticks, st.baseTicks)

	case stateReady:
		state, ok, err := input.Drain(dev)
		if err != nil {
			return game.Running, err
		}
		if ok {
			if state.ButtonFuji {
				return game.Ended, nil
			}
			g.start(int(state.Roll))
		}
		return game.Running, nil

	case statePlaying:
		return g.updatePlaying(dev, ticks, st)

	case stateGameOver:
		if ticks-st.baseTicks > gameOverTicks {
			// the tick cap wins over the bite counter
			g.Reset(ticks)
			return game.Running, nil
		}
		report := led.NewReport()
		st.animation.Update(ticks, &report)
		return game.Running, report.Send(dev)
	}
	return game.Running, nil
}

func (g *Game) updateIdle(dev device.Device, ticks, baseTicks uint64) (game.Event, error) {
	state, ok, err := input.Drain(dev)
	if err != nil {
		return game.Running, err
	}
	if ok {
		if state.ButtonMenu || state.Button1 {
			return game.Running, g.ready(dev)
		}
		if state.ButtonFuji {
			return game.Ended, nil
		}
	}

	// ambient demo: a mouse runs circles while dim waypoints pulse
	// ahead of it
	report := led.NewReport()
	mouse := int((ticks - baseTicks) / 10 % led.RingSize)
	var ahead []int
	for i := 0; i < led.RingSize; i += 3 {
		if i > mouse {
			ahead = append(ahead, i)
		}
	}
	anim := led.NewPulsateWith(led.Indices(ahead...), 8, 0x1C, 0x60)
	anim.Update(ticks, &report)
	report.Set(mouse, 0xFF)
	return game.Running, report.Send(dev)
}

func (g *Game) updatePlaying(dev device.Device, ticks uint64, st statePlaying) (game.Event, error) {
	state, ok, err := input.Drain(dev)
	if err != nil {
		return game.Running, err
	}
	if ok {
		if state.ButtonFuji {
			return game.Ended, nil
		}
		st.mousePosition = int(state.Roll)
	}

	// the cat takes the shorter way around the track
	relPos := mod(st.mousePosition-st.catPosition, trackSize) - trackSize/2
	if relPos > 0 {
		st.catPosition = mod(st.catPosition-st.catSpeed, trackSize)
	} else {
		st.catPosition = mod(st.catPosition+st.catSpeed, trackSize)
	}

	if abs(st.mousePosition-st.catPosition) <= collisionRange {
		cue := feedback.NewWithParams(0xF8, 28, 26, 4)
		if err := cue.Send(dev); err != nil {
			return game.Running, err
		}
		g.gameOver(ticks)
		return game.Running, nil
	}

	if abs(st.mousePosition-st.cheesePosition) <= collisionRange {
		g.score++
		munch := feedback.NewWithParams(0xA4, 9, 12, 3)
		if err := munch.Send(dev); err != nil {
			return game.Running, err
		}
		st.cheesePosition = g.spawn(st.mousePosition, cheeseMinDistance)
		if speed, ok := speedForScore(g.score); ok {
			st.catSpeed = speed
		}
	}

	g.state = st

	report := led.NewReport()

	// mouse: fast, bright pulse
	mouse := led.NewPulsateWith(led.Single(positionToLed(st.mousePosition)), 12, 0xCF, 0xFF)
	mouse.Update(ticks, &report)

	// cheese: slower, dimmer pulse
	cheese := led.NewPulsateWith(led.Single(positionToLed(st.cheesePosition)), 7, 0x1C, 0x66)
	cheese.Update(ticks, &report)

	// cat: steady low glow
	report.Set(positionToLed(st.catPosition), 0x46)

	return game.Running, report.Send(dev)
}

func (g *Game) ready(dev device.Device) error {
	report := led.NewReport()
	if err := report.Send(dev); err != nil {
		return err
	}
	g.state = stateReady{}
	return nil
}

// start seeds the round from the paddle position: the cheese spawns out
// of immediate reach and the cat starts on the far side of the track.
func (g *Game) start(roll int) {
	g.state = statePlaying{
		mousePosition:  roll,
		cheesePosition: g.spawn(roll, cheeseMinDistance),
		catPosition:    g.spawn(roll, catMinDistance),
		catSpeed:       1,
	}
}

func (g *Game) gameOver(ticks uint64) {
	g.state = stateGameOver{
		baseTicks: ticks,
		animation: NewBiteAnimation(ticks),
	}
	g.logger.Info("game over", "score", g.score)
}

// spawn picks a track position at least minDistance away from the
// mouse, rejection-sampled with a bounded number of attempts; position
// zero is the fallback when every attempt lands too close.
func (g *Game) spawn(mousePosition, minDistance int) int {
	for i := 0; i < spawnAttempts; i++ {
		x := g.rng.IntN(trackSize)
		if abs(x-mousePosition) > minDistance {
			return x
		}
	}
	return 0
}

// speedForScore returns the cat speed that kicks in at the given score.
func speedForScore(score int) (int, bool) {
	switch score {
	case 10:
		return 2, true
	case 20:
		return 3, true
	case 30:
		return 4, true
	case 50:
		return 5, true
	case 70:
		return 6, true
	case 100:
		return 7, true
	}
	return 0, false
}

// positionToLed maps a track position onto its ring LED.
func positionToLed(position int) int {
	return position * 3 / 128
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
