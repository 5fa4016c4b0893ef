package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player avatar. Pos is the bottom-left corner of its hitbox.
type Bird struct {
	Pos  core.Vec2
	VelY float64   // World units per second, positive is up
	Size core.Vec2 // Hitbox extent

	start   core.Vec2
	gravity float64
	impulse float64
}

// NewBird creates a bird at its start pose.
func NewBird(avatar config.FlappyAvatar, physics config.FlappyPhysics) Bird {
	b := Bird{
		Size:    core.Vec2{X: avatar.Width, Y: avatar.Height},
		start:   core.Vec2{X: avatar.StartX, Y: avatar.StartY},
		gravity: physics.Gravity,
		impulse: physics.JumpImpulse,
	}
	b.Reset()
	return b
}

// Update integrates vertical motion with semi-implicit Euler.
func (b *Bird) Update(dt float64) {
	b.VelY += b.gravity * dt
	b.Pos.Y += b.VelY * dt
}

// Advance moves the bird forward. Negative distances are ignored.
func (b *Bird) Advance(dx float64) {
	if dx > 0 {
		b.Pos.X += dx
	}
}

// Jump sets the vertical velocity to the jump impulse, discarding the old one.
func (b *Bird) Jump() {
	b.VelY = b.impulse
}

// Reset puts the bird back at its start pose with zero velocity.
func (b *Bird) Reset() {
	b.Pos = b.start
	b.VelY = 0
}

// Bounds returns the bird's hitbox.
func (b Bird) Bounds() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}
