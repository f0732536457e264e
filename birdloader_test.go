package birdloader

import (
	"image/color"
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 60}
	if c := r.Center(); c != (Vec2{X: 60, Y: 50}) {
		t.Errorf("Center = %v, want (60, 50)", c)
	}
	if got := r.MaxRadius(); got != 30 {
		t.Errorf("MaxRadius = %v, want 30", got)
	}
	if r.Empty() {
		t.Error("non-degenerate rect reported empty")
	}
	for _, e := range []Rect{{}, {Width: 10}, {Width: -1, Height: 5}} {
		if !e.Empty() {
			t.Errorf("%v should be empty", e)
		}
		if e.MaxRadius() != 0 {
			t.Errorf("%v MaxRadius = %v, want 0", e, e.MaxRadius())
		}
	}
}

func TestDirection(t *testing.T) {
	if FacingRight.String() != "right" || FacingLeft.String() != "left" {
		t.Error("direction names wrong")
	}
	if FacingRight.sign() != 1 || FacingLeft.sign() != -1 {
		t.Error("direction signs wrong")
	}
	var zero Properties
	if zero.Direction != FacingRight {
		t.Error("the zero Direction should face right")
	}
}

func TestRotationTargetsMirror(t *testing.T) {
	// Every region turns the same distance both ways; only the sense of
	// rotation differs, except for the symmetric full spins.
	for _, p := range []Phase{PhaseA, PhaseB} {
		r := RotationTargets(p, FacingRight)
		l := RotationTargets(p, FacingLeft)
		for i := range r {
			if math.Abs(r[i]) != math.Abs(l[i]) {
				t.Errorf("phase %s region %d: |%v| != |%v|", p, i, r[i], l[i])
			}
		}
	}
}

func TestRotationTargetsTable(t *testing.T) {
	pi := math.Pi
	tests := []struct {
		phase Phase
		dir   Direction
		want  [5]float64
	}{
		{PhaseA, FacingRight, [5]float64{pi / 2, pi, -pi, -pi / 2, -pi / 2}},
		{PhaseB, FacingRight, [5]float64{0, 2 * pi, 0, -2 * pi, 0}},
		{PhaseA, FacingLeft, [5]float64{-pi / 2, pi, -pi, pi / 2, pi / 2}},
		{PhaseB, FacingLeft, [5]float64{0, 2 * pi, 0, 2 * pi, 0}},
	}
	for _, tt := range tests {
		if got := RotationTargets(tt.phase, tt.dir); got != tt.want {
			t.Errorf("RotationTargets(%s, %s) = %v, want %v", tt.phase, tt.dir, got, tt.want)
		}
	}
}

func TestPhaseFor(t *testing.T) {
	for c := 0; c < 6; c++ {
		want := PhaseA
		if c%2 == 1 {
			want = PhaseB
		}
		if PhaseFor(c) != want {
			t.Errorf("PhaseFor(%d) = %s, want %s", c, PhaseFor(c), want)
		}
		if BeardPulses(c) != (c%2 == 1) {
			t.Errorf("BeardPulses(%d) = %v", c, BeardPulses(c))
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{ColorWhite, color.RGBA{255, 255, 255, 255}},
		{Color{R: 1, A: 0.5}, color.RGBA{127, 0, 0, 127}},
		{Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := tt.in.toRGBA(); got != tt.want {
			t.Errorf("%v.toRGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{StateIdle: "idle", StateRunning: "running", StateStopped: "stopped", State(9): "unknown"} {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
