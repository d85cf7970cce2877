// Package led builds LED reports for the classic controller's 24-LED
// ring and hosts the tick-driven animation framework painted onto them.
package led

// RingSize is the number of LEDs in the controller's ring.
const RingSize = 24

// Selection is a mask over the ring's LED positions. Constructors wrap
// indices modulo the ring size, so any selection is valid by
// construction and report encoding stays total.
type Selection [RingSize]bool

// wrap maps any index onto the ring.
func wrap(index int) int {
	return ((index % RingSize) + RingSize) % RingSize
}

// None selects no LED.
func None() Selection {
	return Selection{}
}

// All selects every LED in the ring.
func All() Selection {
	var s Selection
	for i := range s {
		s[i] = true
	}
	return s
}

// Single selects one LED by index.
func Single(index int) Selection {
	var s Selection
	s[wrap(index)] = true
	return s
}

// Indices selects an arbitrary set of LEDs.
func Indices(indices ...int) Selection {
	var s Selection
	for _, i := range indices {
		s[wrap(i)] = true
	}
	return s
}

// Arc selects the LEDs from start up to but excluding end, walking
// clockwise and wrapping around the ring.
func Arc(start, end int) Selection {
	var s Selection
	for i := start; i < end; i++ {
		s[wrap(i)] = true
	}
	return s
}

// Quadrant selects one diagonal quadrant of the ring, 0 to 3. Each
// quadrant is seven LEDs: six of its own plus the boundary LED shared
// with the next quadrant, so adjacent quadrants union into a continuous
// arc with no gap at the seam.
func Quadrant(quadrant int) Selection {
	base := (((quadrant % 4) + 4) % 4) * 6
	var s Selection
	for i := base; i <= base+6; i++ {
		s[i%RingSize] = true
	}
	return s
}

// Span selects a symmetric block of LEDs around center: radius LEDs
// counter-clockwise of it and radius-1 clockwise, center included.
// Radius zero selects nothing.
func Span(center, radius int) Selection {
	var s Selection
	for i := 0; i < radius; i++ {
		s[wrap(center+i)] = true
	}
	for i := 1; i <= radius; i++ {
		s[wrap(center-i)] = true
	}
	return s
}

// Or combines two selections into their union.
func (s Selection) Or(other Selection) Selection {
	var out Selection
	for i := range out {
		out[i] = s[i] || other[i]
	}
	return out
}
