package motion

// historyLen is the number of recent per-tick classifications kept for the
// majority/hold check.
const historyLen = 5

// history is a fixed-capacity ring of the most recent gestures. The oldest
// slot is overwritten in ring order, one write per classification tick.
type history struct {
	slots [historyLen]Gesture
	head  int
}

func newHistory() history {
	var h history
	for i := range h.slots {
		h.slots[i] = Unknown
	}
	h.head = historyLen - 1
	return h
}

// push advances the ring and records g in the new head slot.
func (h *history) push(g Gesture) {
	h.head = (h.head + 1) % historyLen
	h.slots[h.head] = g
}

// recent returns the head slot and the two slots before it, newest first.
func (h *history) recent() (g0, g1, g2 Gesture) {
	i1 := (h.head + historyLen - 1) % historyLen
	i2 := (h.head + historyLen - 2) % historyLen
	return h.slots[h.head], h.slots[i1], h.slots[i2]
}

// clearPrev resets the two slots preceding the head to Unknown, so a hold
// just detected cannot re-fire off the same window on the next tick.
func (h *history) clearPrev() {
	h.slots[(h.head+historyLen-1)%historyLen] = Unknown
	h.slots[(h.head+historyLen-2)%historyLen] = Unknown
}
