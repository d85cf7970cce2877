package led_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidgames/classichid/led"
)

// indicesOf flattens a selection into the sorted list of selected LEDs.
func indicesOf(s led.Selection) []int {
	var out []int
	for i, on := range s {
		if on {
			out = append(out, i)
		}
	}
	return out
}

func TestSelectionConstructors(t *testing.T) {
	type testCase struct {
		name      string
		selection led.Selection
		expected  []int
	}

	cases := []testCase{
		{name: "none", selection: led.None(), expected: nil},
		{
			name:      "all",
			selection: led.All(),
			expected: []int{
				0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
				12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23,
			},
		},
		{name: "single", selection: led.Single(5), expected: []int{5}},
		{name: "single wraps negative", selection: led.Single(-1), expected: []int{23}},
		{name: "single wraps past ring", selection: led.Single(24), expected: []int{0}},
		{name: "indices", selection: led.Indices(2, 7, 25), expected: []int{1, 2, 7}},
		{name: "arc", selection: led.Arc(3, 10), expected: []int{3, 4, 5, 6, 7, 8, 9}},
		{name: "arc wraps", selection: led.Arc(21, 28), expected: []int{0, 1, 2, 3, 21, 22, 23}},
		{name: "arc empty", selection: led.Arc(5, 5), expected: nil},
		{name: "quadrant 0", selection: led.Quadrant(0), expected: []int{0, 1, 2, 3, 4, 5, 6}},
		{name: "quadrant 3 wraps", selection: led.Quadrant(3), expected: []int{0, 18, 19, 20, 21, 22, 23}},
		{name: "quadrant negative", selection: led.Quadrant(-1), expected: []int{0, 18, 19, 20, 21, 22, 23}},
		{name: "quadrant past four", selection: led.Quadrant(5), expected: []int{6, 7, 8, 9, 10, 11, 12}},
		{name: "span", selection: led.Span(12, 2), expected: []int{10, 11, 12, 13}},
		{name: "span wraps", selection: led.Span(0, 3), expected: []int{0, 1, 2, 21, 22, 23}},
		{name: "span radius zero", selection: led.Span(5, 0), expected: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, indicesOf(tc.selection))
		})
	}
}

func TestAdjacentQuadrantsShareSeam(t *testing.T) {
	// quadrant arcs overlap on their boundary LED, so the union of two
	// neighbors is one continuous arc
	union := led.Quadrant(0).Or(led.Quadrant(1))
	assert.Equal(t, indicesOf(led.Arc(0, 13)), indicesOf(union))
}

func TestSelectionOr(t *testing.T) {
	union := led.Single(1).Or(led.Single(22))
	assert.Equal(t, []int{1, 22}, indicesOf(union))

	assert.Equal(t, indicesOf(led.All()), indicesOf(led.All().Or(led.None())))
}
