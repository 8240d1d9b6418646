package bounce

import (
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// OutlineWidth is the thickness of the contrast ring drawn around every ball.
const OutlineWidth = 2

// Rand is the randomness source used for spawn positions, velocities and
// colors. *math/rand.Rand satisfies it; tests may inject a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Ball is a circular body bouncing inside the viewport.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Color  core.Color
}

// NewBall creates a ball at pos with a random velocity in
// [-maxSpeed, maxSpeed) on each axis and a random palette color.
func NewBall(pos core.Vec, radius, maxSpeed float64, rng Rand) *Ball {
	vx := uniform(rng, -maxSpeed, maxSpeed)
	vy := uniform(rng, -maxSpeed, maxSpeed)
	return &Ball{
		Pos:    pos,
		Vel:    core.Vec{X: vx, Y: vy},
		Radius: radius,
		Color:  core.BallPalette[rng.Intn(len(core.BallPalette))],
	}
}

// Advance moves the ball by its velocity and reflects it off the viewport
// edges. Each axis is handled on its own: touching or crossing an edge
// negates that velocity component and clamps the position back inside, so
// a corner hit flips both components in the same tick.
func (b *Ball) Advance(width, height float64) {
	b.Pos = b.Pos.Add(b.Vel)

	if b.Pos.X-b.Radius <= 0 || b.Pos.X+b.Radius >= width {
		b.Vel.X = -b.Vel.X
		b.Pos.X = core.ClampF(b.Pos.X, b.Radius, width-b.Radius)
	}

	if b.Pos.Y-b.Radius <= 0 || b.Pos.Y+b.Radius >= height {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = core.ClampF(b.Pos.Y, b.Radius, height-b.Radius)
	}
}

// Render draws the ball filled with its color, then a white outline on top.
func (b *Ball) Render(dst *core.Surface) {
	p := b.Pos.Point()
	r := int(b.Radius)
	dst.FillCircle(p.X, p.Y, r, b.Color)
	dst.StrokeCircle(p.X, p.Y, r, OutlineWidth, core.ColorWhite)
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
