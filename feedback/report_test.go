package feedback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidgames/classichid/feedback"
	"github.com/hidgames/classichid/internal/simdev"
)

func TestReportEncoding(t *testing.T) {
	type testCase struct {
		name     string
		report   feedback.Report
		expected []byte
	}

	cases := []testCase{
		{
			name:     "cancel",
			report:   feedback.New(),
			expected: []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:     "single strong burst",
			report:   feedback.NewWithParams(0xCC, 0xBB, 0, 1),
			expected: []byte{0x01, 0xCC, 0xBB, 0x00, 0x01, 0x00},
		},
		{
			name:     "repeated bursts",
			report:   feedback.NewWithParams(0xF8, 28, 26, 4),
			expected: []byte{0x01, 0xF8, 0x1C, 0x1A, 0x04, 0x00},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.report.Bytes())
		})
	}
}

func TestSend(t *testing.T) {
	dev := simdev.New()
	r := feedback.NewWithParams(0xA4, 9, 12, 3)

	assert.NoError(t, r.Send(dev))
	assert.Equal(t, []byte{0x01, 0xA4, 0x09, 0x0C, 0x03, 0x00}, dev.LastFeedback())
}

func TestBytesReturnsCopy(t *testing.T) {
	r := feedback.New()
	b := r.Bytes()
	b[1] = 0xFF
	assert.Equal(t, byte(0x00), r.Bytes()[1])
}
