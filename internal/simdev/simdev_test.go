package simdev_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidgames/classichid/input"
	"github.com/hidgames/classichid/internal/simdev"
)

func TestReportsQueueInOrder(t *testing.T) {
	dev := simdev.New()
	dev.SetButton1(true)
	dev.SetButton1(false)

	var buf [input.ReportSize]byte

	n, err := dev.Read(buf[:])
	assert.NoError(t, err)
	assert.Equal(t, input.ReportSize, n)
	state, err := input.ParseReport(buf[:n])
	assert.NoError(t, err)
	assert.True(t, state.Button1)

	n, err = dev.Read(buf[:])
	assert.NoError(t, err)
	state, err = input.ParseReport(buf[:n])
	assert.NoError(t, err)
	assert.False(t, state.Button1)

	// queue drained
	n, err = dev.Read(buf[:])
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestMutationsAccumulate(t *testing.T) {
	dev := simdev.New()
	dev.MoveStick(input.DownRight)
	dev.SetRoll(0x7FF) // wrapped to the 10-bit track
	dev.SetButtonMenu(true)

	state, ok, err := input.Drain(dev)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, input.State{
		StickPosition: input.DownRight,
		ButtonMenu:    true,
		Roll:          0x3FF,
	}, state)
}

func TestWriteAppliesLedReport(t *testing.T) {
	dev := simdev.New()

	report := make([]byte, 28)
	report[0] = 0x02
	report[1] = 25
	report[2] = 0x99
	for i := 0; i < 24; i++ {
		report[3+i] = byte(i + 1)
	}

	n, err := dev.Write(report)
	assert.NoError(t, err)
	assert.Equal(t, len(report), n)
	assert.Equal(t, byte(0x99), dev.FujiLed())
	leds := dev.Leds()
	for i := 0; i < 24; i++ {
		assert.Equal(t, byte(i+1), leds[i], "led %d", i)
	}
}

func TestWriteCapturesFeedback(t *testing.T) {
	dev := simdev.New()
	assert.Nil(t, dev.LastFeedback())

	_, err := dev.Write([]byte{0x01, 0x10, 0x20, 0x30, 0x02, 0x00})
	assert.NoError(t, err)
	_, err = dev.Write([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00})
	assert.NoError(t, err)

	assert.Len(t, dev.Feedback(), 2)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, dev.LastFeedback())
}

func TestWriteIgnoresUnknownReport(t *testing.T) {
	dev := simdev.New()
	n, err := dev.Write([]byte{0x09, 0xFF})
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, byte(0), dev.FujiLed())
}
