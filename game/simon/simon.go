// Package simon implements a game of Simon Says on the classic
// controller: the LED ring shows a growing sequence of directions and
// the player repeats it on the stick.
package simon

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

// Tick spans for the non-interactive states.
const (
	prepareTicks  = 30
	gameOverTicks = 160
	idleCycle     = 50
)

// Choice is one direction the player has to repeat.
type Choice uint8

const (
	Up Choice = iota
	Right
	Down
	Left
)

func (c Choice) String() string {
	switch c {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "?"
}

// selection returns the LED arc shown for the choice. Arcs are laid out
// quadrant-style with the up arc at the top of the ring.
func (c Choice) selection() led.Selection {
	switch c {
	case Up:
		return led.Arc(9, 16)
	case Right:
		return led.Arc(15, 22)
	case Down:
		return led.Arc(21, 28)
	default:
		return led.Arc(3, 10)
	}
}

// Game state variants. The whole variant is replaced on transition, so
// no state ever carries half-updated fields.
type gameState interface{ simonState() }

type stateIdle struct{ baseTick uint64 }
type statePreparing struct{ baseTick uint64 }
type stateShowing struct {
	anim  *led.Asr
	index int
}
type statePlaying struct {
	index  int
	pushed *Choice
}
type stateGameOver struct {
	baseTick uint64
	anim     *led.Pulsate
}

func (stateIdle) simonState()      {}
func (statePreparing) simonState() {}
func (stateShowing) simonState()   {}
func (statePlaying) simonState()   {}
func (stateGameOver) simonState()  {}

// Game is a game of Simon Says. It owns its state exclusively; Update
// must be called from a single loop, once per tick.
type Game struct {
	logger   *slog.Logger
	rng      *rand.Rand
	sequence []Choice
	state    gameState
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

// Reset abandons any game in progress and returns to the idle demo.
func (g *Game) Reset(ticks uint64) {
	g.state = stateIdle{baseTick: ticks}
	g.sequence = g.sequence[:0]
}

// Update advances the game by one tick, consuming pending input and
// repainting the LEDs. It returns game.Ended when the player leaves via
// the Fuji button.
func (g *Game) Update(dev device.Device, ticks uint64) (game.Event, error) {
	switch st := g.state.(type) {
	case stateIdle:
		return g.updateIdle(dev, ticks, st.baseTick)

	case statePreparing:
		if ticks-st.baseTick > prepareTicks {
			g.start(ticks)
		}
		report := led.NewReport()
		return game.Running, report.Send(dev)

	case stateShowing:
		report := led.NewReport()
		if st.anim.Update(ticks, &report) == led.Ended {
			if st.index < len(g.sequence)-1 {
				// move on to the next item in the sequence
				index := st.index + 1
				anim := animFor(g.sequence[index])
				anim.Reset(ticks)
				g.state = stateShowing{anim: anim, index: index}
			} else {
				// done showing, hand the stick to the player
				g.state = statePlaying{index: 0}
			}
		}
		return game.Running, report.Send(dev)

	case statePlaying:
		return g.updatePlaying(dev, ticks, st)

	case stateGameOver:
		if ticks-st.baseTick > gameOverTicks {
			// cancel any pending vibration
			cancel := feedback.New()
			if err := cancel.Send(dev); err != nil {
				return game.Running, err
			}
			g.Reset(ticks)
		}
		report := led.NewReport()
		st.anim.Update(ticks-st.baseTick, &report)
		return game.Running, report.Send(dev)
	}
	return game.Running, nil
}

func (g *Game) updateIdle(dev device.Device, ticks, baseTick uint64) (game.Event, error) {
	state, ok, err := input.Drain(dev)
	if err != nil {
		return game.Running, err
	}
	if ok {
		if state.ButtonMenu || state.Button1 {
			g.logger.Info("get ready")
			g.state = statePreparing{baseTick: ticks}
		}
		if state.ButtonFuji {
			return game.Ended, nil
		}
	}

	// ambient demo: cycle the four direction arcs until someone presses
	// the menu button
	rel := ticks - baseTick
	report := led.NewReport()
	anim := animFor(Choice(rel / idleCycle % 4))
	anim.Update(rel%idleCycle, &report)
	return game.Running, report.Send(dev)
}

func (g *Game) updatePlaying(dev device.Device, ticks uint64, st statePlaying) (game.Event, error) {
	state, ok, err := input.Drain(dev)
	if err != nil {
		return game.Running, err
	}
	if !ok {
		return game.Running, nil
	}

	if st.pushed == nil {
		if c, ok := choiceFromStick(state.StickPosition); ok {
			g.state = statePlaying{index: st.index, pushed: &c}
		}
		return game.Running, nil
	}

	if state.StickPosition != input.Center {
		// stick still held, keep showing the pending choice
		report := led.NewReport()
		report.SetSelection(st.pushed.selection(), 0xFF)
		return game.Running, report.Send(dev)
	}

	// stick released, the pending choice is final
	if *st.pushed != g.sequence[st.index] {
		return game.Running, g.gameOver(dev, ticks)
	}

	index := st.index + 1
	if index == len(g.sequence) {
		g.nextLevel(ticks)
		return game.Running, nil
	}
	g.state = statePlaying{index: index}
	report := led.NewReport()
	return game.Running, report.Send(dev)
}

func (g *Game) start(ticks uint64) {
	g.logger.Info("it begins, watch carefully")
	g.sequence = []Choice{g.choose(), g.choose()}
	anim := animFor(g.sequence[0])
	anim.Reset(ticks)
	g.state = stateShowing{anim: anim, index: 0}
}

func (g *Game) nextLevel(ticks uint64) {
	g.sequence = append(g.sequence, g.choose())
	anim := animFor(g.sequence[0])
	anim.Reset(ticks)
	g.state = stateShowing{anim: anim, index: 0}
}

func (g *Game) gameOver(dev device.Device, ticks uint64) error {
	g.state = stateGameOver{
		baseTick: ticks,
		anim:     led.NewPulsateWith(led.All(), 18, 0x25, 0x7F),
	}
	g.logger.Info("game over", "score", len(g.sequence))

	// rattle the controller for a moment
	cue := feedback.NewWithParams(0xCC, 0xBB, 0, 1)
	return cue.Send(dev)
}

func (g *Game) choose() Choice {
	return Choice(g.rng.IntN(4))
}

func animFor(c Choice) *led.Asr {
	return led.NewAsrWith(c.selection(), 5, 30, 8)
}

func choiceFromStick(p input.StickPosition) (Choice, bool) {
	switch p {
	case input.Up:
		return Up, true
	case input.Right:
		return Right, true
	case input.Down:
		return Down, true
	case input.Left:
		return Left, true
	}
	return 0, false
}
