package bounce

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// scriptedRand replays fixed values so ball construction is predictable.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func TestNewBallVelocityAndColor(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0, 0.75}, ints: []int{3}}
	b := NewBall(core.Vec{X: 100, Y: 200}, 20, 5, rng)

	if b.Vel.X != -5 {
		t.Errorf("Vel.X = %g, expected -5 for a zero draw", b.Vel.X)
	}
	if b.Vel.Y != 2.5 {
		t.Errorf("Vel.Y = %g, expected 2.5 for a 0.75 draw", b.Vel.Y)
	}
	if b.Color != core.BallPalette[3] {
		t.Errorf("Color = %+v, expected palette[3]", b.Color)
	}
	if b.Pos != (core.Vec{X: 100, Y: 200}) || b.Radius != 20 {
		t.Errorf("Position or radius not kept: %+v", b)
	}
}

func TestNewBallVelocityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		b := NewBall(core.Vec{X: 400, Y: 300}, 20, 5, rng)
		if b.Vel.X < -5 || b.Vel.X >= 5 || b.Vel.Y < -5 || b.Vel.Y >= 5 {
			t.Fatalf("velocity %+v outside [-5, 5)", b.Vel)
		}
	}
}

func TestBallAdvanceReflection(t *testing.T) {
	const w, h = 800.0, 600.0

	tests := []struct {
		name    string
		pos     core.Vec
		vel     core.Vec
		wantPos core.Vec
		wantVel core.Vec
	}{
		{
			name:    "interior move",
			pos:     core.Vec{X: 400, Y: 300},
			vel:     core.Vec{X: 3, Y: -2},
			wantPos: core.Vec{X: 403, Y: 298},
			wantVel: core.Vec{X: 3, Y: -2},
		},
		{
			name:    "left wall",
			pos:     core.Vec{X: 25, Y: 300},
			vel:     core.Vec{X: -10, Y: 1},
			wantPos: core.Vec{X: 20, Y: 301},
			wantVel: core.Vec{X: 10, Y: 1},
		},
		{
			name:    "right wall",
			pos:     core.Vec{X: 775, Y: 300},
			vel:     core.Vec{X: 10, Y: 0},
			wantPos: core.Vec{X: 780, Y: 300},
			wantVel: core.Vec{X: -10, Y: 0},
		},
		{
			name:    "top wall",
			pos:     core.Vec{X: 400, Y: 22},
			vel:     core.Vec{X: 1, Y: -4},
			wantPos: core.Vec{X: 401, Y: 20},
			wantVel: core.Vec{X: 1, Y: 4},
		},
		{
			name:    "bottom wall",
			pos:     core.Vec{X: 400, Y: 578},
			vel:     core.Vec{X: 0, Y: 4},
			wantPos: core.Vec{X: 400, Y: 580},
			wantVel: core.Vec{X: 0, Y: -4},
		},
		{
			name:    "touching counts as a hit",
			pos:     core.Vec{X: 30, Y: 300},
			vel:     core.Vec{X: -10, Y: 0},
			wantPos: core.Vec{X: 20, Y: 300},
			wantVel: core.Vec{X: 10, Y: 0},
		},
		{
			name:    "corner flips both axes",
			pos:     core.Vec{X: 778, Y: 578},
			vel:     core.Vec{X: 4, Y: 4},
			wantPos: core.Vec{X: 780, Y: 580},
			wantVel: core.Vec{X: -4, Y: -4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Pos: tc.pos, Vel: tc.vel, Radius: 20}
			b.Advance(w, h)
			if b.Pos != tc.wantPos {
				t.Errorf("Pos = %+v, expected %+v", b.Pos, tc.wantPos)
			}
			if b.Vel != tc.wantVel {
				t.Errorf("Vel = %+v, expected %+v", b.Vel, tc.wantVel)
			}
		})
	}
}

func TestBallAdvanceStaysInBounds(t *testing.T) {
	const w, h = 800.0, 600.0
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 50; i++ {
		// Start anywhere, including partially outside, like a click near the edge
		pos := core.Vec{X: rng.Float64() * w, Y: rng.Float64() * h}
		b := NewBall(pos, 20, 5, rng)
		for tick := 0; tick < 500; tick++ {
			b.Advance(w, h)
			if b.Pos.X < b.Radius || b.Pos.X > w-b.Radius || b.Pos.Y < b.Radius || b.Pos.Y > h-b.Radius {
				t.Fatalf("ball %d left the viewport at tick %d: %+v", i, tick, b.Pos)
			}
		}
	}
}

func TestBallRender(t *testing.T) {
	s, err := core.NewSurface(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	s.Clear(core.ColorBlack)

	b := &Ball{Pos: core.Vec{X: 50.9, Y: 50.2}, Radius: 20, Color: core.ColorBlue}
	b.Render(s)

	if s.At(50, 50) != core.ColorBlue {
		t.Errorf("center = %+v, expected ball color", s.At(50, 50))
	}
	if s.At(70, 50) != core.ColorWhite {
		t.Errorf("edge = %+v, expected white outline", s.At(70, 50))
	}
	if s.At(75, 50) != core.ColorBlack {
		t.Errorf("outside = %+v, expected background", s.At(75, 50))
	}
}
