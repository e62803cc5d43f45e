package sde

import (
	"math"
	"testing"
)

func TestGBMTerminalZeroNoise(t *testing.T) {
	y0 := Vector{1.0, 2.0}
	w := Vector{0.0, 0.0}

	strat := GBMTerminal(1.0, 1.0, 0, 1, y0, w, Stratonovich)
	for i := range y0 {
		want := y0[i] * math.E
		if math.Abs(strat[i]-want) > 1e-12 {
			t.Errorf("stratonovich path %d: got %.8f, want %.8f", i, strat[i], want)
		}
	}

	ito := GBMTerminal(1.0, 1.0, 0, 1, y0, w, Ito)
	for i := range y0 {
		want := y0[i] * math.Exp(0.5)
		if math.Abs(ito[i]-want) > 1e-12 {
			t.Errorf("ito path %d: got %.8f, want %.8f", i, ito[i], want)
		}
	}
}

func TestGBMTerminalPinnedDisplacement(t *testing.T) {
	y0 := Vector{1.0}
	w := Vector{0.3}

	got := GBMTerminal(0.5, 0.8, 0, 2, y0, w, Stratonovich)[0]
	want := math.Exp(0.5*2 + 0.8*0.3)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %.10f, want %.10f", got, want)
	}
}

func TestGBMPathConsistent(t *testing.T) {
	times := []float64{0, 1, 2}
	y0 := Vector{1.0}
	w := []Vector{{0}, {0.1}, {0.25}}

	path := GBMPath(1.0, 1.0, times, y0, w, Ito)
	if len(path) != len(times) {
		t.Fatalf("expected %d rows, got %d", len(times), len(path))
	}
	if path[0][0] != y0[0] {
		t.Errorf("expected initial value preserved, got %v", path[0][0])
	}

	term := GBMTerminal(1.0, 1.0, 0, 2, y0, w[2], Ito)
	if path[2][0] != term[0] {
		t.Errorf("path terminal %v != direct terminal %v", path[2][0], term[0])
	}
}
