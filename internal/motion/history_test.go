package motion

import "testing"

func TestHistoryStartsUnknown(t *testing.T) {
	h := newHistory()
	g0, g1, g2 := h.recent()
	if g0 != Unknown || g1 != Unknown || g2 != Unknown {
		t.Errorf("recent = %v,%v,%v, want all Unknown", g0, g1, g2)
	}
}

func TestHistoryRecentNewestFirst(t *testing.T) {
	h := newHistory()
	h.push(TurnLeft)
	h.push(Up)
	h.push(Down)

	g0, g1, g2 := h.recent()
	if g0 != Down || g1 != Up || g2 != TurnLeft {
		t.Errorf("recent = %v,%v,%v, want Down,Up,TurnLeft", g0, g1, g2)
	}
}

func TestHistoryWrapsInRingOrder(t *testing.T) {
	h := newHistory()
	seq := []Gesture{TurnLeft, TurnRight, Up, Down, Shake, GoForward, Return}
	for _, g := range seq {
		h.push(g)
	}

	g0, g1, g2 := h.recent()
	if g0 != Return || g1 != GoForward || g2 != Shake {
		t.Errorf("recent after wrap = %v,%v,%v, want Return,GoForward,Shake", g0, g1, g2)
	}
}

func TestHistoryClearPrev(t *testing.T) {
	h := newHistory()
	h.push(Up)
	h.push(Up)
	h.push(Up)
	h.clearPrev()

	g0, g1, g2 := h.recent()
	if g0 != Up {
		t.Errorf("head = %v, want Up", g0)
	}
	if g1 != Unknown || g2 != Unknown {
		t.Errorf("prev slots = %v,%v, want Unknown,Unknown", g1, g2)
	}
}
