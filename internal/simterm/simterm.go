// Package simterm drives a simulated controller from the terminal
// keyboard so the games can be played without hardware. Arrow keys
// steer the stick, enter/space press the main button, m is menu, b is
// back, z/x turn the paddle and q (or the Fuji key f) leaves.
//
// Terminals report key presses but never releases, so each press holds
// its control for a few ticks and then snaps back.
package simterm

import (
	"os"

	"golang.org/x/term"

	"github.com/hidgames/classichid/input"
	"github.com/hidgames/classichid/internal/simdev"
)

// holdTicks is how long a key press keeps its control engaged.
const holdTicks = 6

// rollStep is how far one paddle key press turns the roll.
const rollStep = 16

type key int

const (
	keyUp key = iota
	keyDown
	keyLeft
	keyRight
	keyButton1
	keyButton2
	keyMenu
	keyBack
	keyFuji
	keyRollCW
	keyRollCCW
	keyQuit
)

// Pump owns the raw terminal and translates key presses into simulated
// controller state once per tick.
type Pump struct {
	dev     *simdev.Device
	events  chan key
	restore func()

	roll uint16

	stickUntil   uint64
	button1Until uint64
	button2Until uint64
	menuUntil    uint64
	backUntil    uint64
	fujiUntil    uint64
}

// Start switches the terminal into raw mode and begins reading keys.
func Start(dev *simdev.Device) (*Pump, error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	p := &Pump{
		dev:     dev,
		events:  make(chan key, 64),
		restore: func() { _ = term.Restore(fd, old) },
	}
	go p.readLoop()
	return p, nil
}

// Stop restores the terminal.
func (p *Pump) Stop() {
	p.restore()
}

// Tick applies pending key presses to the simulated device and releases
// controls whose hold has expired. It returns false when the player
// asked to quit.
func (p *Pump) Tick(ticks uint64) bool {
	for {
		select {
		case k := <-p.events:
			if !p.press(k, ticks) {
				return false
			}
		default:
			p.release(ticks)
			return true
		}
	}
}

func (p *Pump) press(k key, ticks uint64) bool {
	until := ticks + holdTicks
	switch k {
	case keyUp:
		p.dev.MoveStick(input.Up)
		p.stickUntil = until
	case keyDown:
		p.dev.MoveStick(input.Down)
		p.stickUntil = until
	case keyLeft:
		p.dev.MoveStick(input.Left)
		p.stickUntil = until
	case keyRight:
		p.dev.MoveStick(input.Right)
		p.stickUntil = until
	case keyButton1:
		p.dev.SetButton1(true)
		p.button1Until = until
	case keyButton2:
		p.dev.SetButton2(true)
		p.button2Until = until
	case keyMenu:
		p.dev.SetButtonMenu(true)
		p.menuUntil = until
	case keyBack:
		p.dev.SetButtonBack(true)
		p.backUntil = until
	case keyFuji:
		p.dev.SetButtonFuji(true)
		p.fujiUntil = until
	case keyRollCW:
		p.roll = (p.roll + rollStep) & 0x3FF
		p.dev.SetRoll(p.roll)
	case keyRollCCW:
		p.roll = (p.roll - rollStep) & 0x3FF
		p.dev.SetRoll(p.roll)
	case keyQuit:
		return false
	}
	return true
}

func (p *Pump) release(ticks uint64) {
	if p.stickUntil != 0 && ticks >= p.stickUntil {
		p.dev.MoveStick(input.Center)
		p.stickUntil = 0
	}
	if p.button1Until != 0 && ticks >= p.button1Until {
		p.dev.SetButton1(false)
		p.button1Until = 0
	}
	if p.button2Until != 0 && ticks >= p.button2Until {
		p.dev.SetButton2(false)
		p.button2Until = 0
	}
	if p.menuUntil != 0 && ticks >= p.menuUntil {
		p.dev.SetButtonMenu(false)
		p.menuUntil = 0
	}
	if p.backUntil != 0 && ticks >= p.backUntil {
		p.dev.SetButtonBack(false)
		p.backUntil = 0
	}
	if p.fujiUntil != 0 && ticks >= p.fujiUntil {
		p.dev.SetButtonFuji(false)
		p.fujiUntil = 0
	}
}

func (p *Pump) readLoop() {
	var buf [1]byte
	esc := 0 // 0 none, 1 saw ESC, 2 saw ESC [
	for {
		if _, err := os.Stdin.Read(buf[:]); err != nil {
			p.events <- keyQuit
			return
		}
		b := buf[0]

		switch esc {
		case 1:
			if b == '[' {
				esc = 2
			} else {
				esc = 0
			}
			continue
		case 2:
			esc = 0
			switch b {
			case 'A':
				p.events <- keyUp
			case 'B':
				p.events <- keyDown
			case 'C':
				p.events <- keyRight
			case 'D':
				p.events <- keyLeft
			}
			continue
		}

		switch b {
		case 0x1b:
			esc = 1
		case '\r', ' ':
			p.events <- keyButton1
		case 's':
			p.events <- keyButton2
		case 'm':
			p.events <- keyMenu
		case 'b':
			p.events <- keyBack
		case 'f':
			p.events <- keyFuji
		case 'x':
			p.events <- keyRollCW
		case 'z':
			p.events <- keyRollCCW
		case 'q', 0x03:
			p.events <- keyQuit
			return
		}
	}
}
