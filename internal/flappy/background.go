package flappy

import "math"

// Background is the cosmetic parallax layer. It has no effect on gameplay.
type Background struct {
	Offset float64 // Scroll position in [0, width)

	speed float64
	width float64
}

// NewBackground creates a layer that scrolls at speed and repeats every width
// world units.
func NewBackground(speed, width float64) Background {
	return Background{speed: speed, width: width}
}

// Update scrolls the layer by dt seconds.
func (b *Background) Update(dt float64) {
	if b.width <= 0 {
		return
	}
	b.Offset = math.Mod(b.Offset+dt*b.speed, b.width)
}

// Reset returns the layer to its initial position.
func (b *Background) Reset() {
	b.Offset = 0
}
