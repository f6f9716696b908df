package motion

import (
	"log"
	"time"

	"github.com/Heratiki/HoloCube/internal/imu"
)

// confirmDelay is the window between a push/pull candidate and its
// confirmatory re-sample on the interval-gated path.
const confirmDelay = 500 * time.Millisecond

// ActionState is the latched result of the most recent detection. Valid is
// a one-shot latch: it stays set until the consumer calls Consume, so the
// UI can poll at its own cadence without losing single-tick events.
type ActionState struct {
	Active    Gesture
	Valid     bool
	Sustained bool
}

// EncoderState mimics a physical rotary encoder with a push button. The
// engine never clamps or resets it; range and consumption semantics belong
// to the consumer.
type EncoderState struct {
	Diff    int32
	Pressed bool
}

// confirmPhase tracks a pending confirmatory re-sample. Instead of sleeping
// the shared loop for the confirm window, the engine stores a deadline and
// re-checks it on later ticks.
type confirmPhase struct {
	pending  bool
	want     Gesture // Up or Down
	deadline time.Time
}

// Engine turns raw 6-axis samples into debounced gesture events and a
// virtual rotary-encoder state. It is single-threaded by design: one call
// per iteration of the shared I/O loop, and no other subsystem touches it.
//
// Two detection paths are exposed. PollAction runs the history/majority
// debouncer and is what the shipped polling loop uses. Update is the
// interval-gated path with continuous rotation stepping and a confirmatory
// re-sample for push/pull, kept for consumers that want raw rotary-encoder
// cadence. A production loop should drive one of them, not both.
type Engine struct {
	src    imu.RawSource
	orient Orientation

	action  ActionState
	encoder EncoderState
	hist    history
	confirm confirmPhase

	lastUpdate time.Time
	now        func() time.Time
}

// NewEngine creates an engine reading from src with the given mounting
// orientation. Unrecognized orientation bits are ignored.
func NewEngine(src imu.RawSource, orient Orientation) *Engine {
	e := &Engine{
		src:    src,
		action: ActionState{Active: Unknown},
		hist:   newHistory(),
		now:    time.Now,
	}
	e.SetOrientation(orient)
	return e
}

// SetOrientation replaces the mounting orientation. Bits outside the
// recognized mask are logged and ignored.
func (e *Engine) SetOrientation(o Orientation) {
	if extra := o.Unrecognized(); extra != 0 {
		log.Printf("motion: ignoring unrecognized orientation bits 0x%02x", uint8(extra))
	}
	e.orient = o & orientRecognized
}

// Action returns the current latched action snapshot.
func (e *Engine) Action() ActionState { return e.action }

// Encoder returns the current encoder snapshot.
func (e *Engine) Encoder() EncoderState { return e.encoder }

// Consume clears the one-shot latch, re-arming event detection.
func (e *Engine) Consume() {
	e.action = ActionState{Active: Unknown}
}

// sample reads one raw sample and transforms it into the logical frame.
// A failed read reports ok=false; the caller treats it as Unknown and never
// latches off it, so a transient sensor fault cannot fire a gesture.
func (e *Engine) sample() (imu.RawSample, bool) {
	raw, err := e.src.NextRaw()
	if err != nil {
		return imu.RawSample{}, false
	}
	return Transform(raw, e.orient), true
}

// PollAction runs the history/majority detection path for one tick and
// returns the (possibly newly latched) action state.
//
// The tick's classification is always pushed into the history ring. While
// idle, three identical consecutive Up or Down classifications are a
// sustained hold, mapped to GoForward or Return; the two older slots are
// then reset so one physical hold cannot stream events. Any other
// non-Unknown classification latches as a momentary pulse.
func (e *Engine) PollAction() ActionState {
	s, ok := e.sample()
	g := Unknown
	if ok {
		g = Classify(s)
	}
	e.hist.push(g)

	if e.action.Valid {
		return e.action
	}

	g0, g1, g2 := e.hist.recent()
	if g0 == g1 && g1 == g2 && (g0 == Up || g0 == Down) {
		held := GoForward
		if g0 == Down {
			held = Return
		}
		e.latch(held, true)
		e.hist.clearPrev()
		return e.action
	}

	if g != Unknown {
		e.latch(g, false)
	}
	return e.action
}

// Update runs the interval-gated detection path. Rotation is never
// debounced: every qualifying tick steps the encoder counter, latched or
// not. A push or pull candidate latches immediately and arms a single
// confirmatory re-sample after confirmDelay; only a matching re-sample
// escalates it to GoForward or Return and drives the press state. The
// confirm wait never blocks the caller.
func (e *Engine) Update(interval time.Duration) ActionState {
	now := e.now()

	if e.confirm.pending && !now.Before(e.confirm.deadline) {
		e.resolveConfirm()
	}

	if !e.lastUpdate.IsZero() && now.Sub(e.lastUpdate) <= interval {
		return e.action
	}
	e.lastUpdate = now

	s, ok := e.sample()
	if !ok {
		return e.action
	}

	switch g := Classify(s); g {
	case TurnLeft, TurnRight:
		e.applyEncoder(g)
		if !e.action.Valid {
			e.action = ActionState{Active: g, Valid: true}
		}
	case Up, Down:
		if !e.action.Valid {
			e.action = ActionState{Active: g, Valid: true}
			e.confirm = confirmPhase{pending: true, want: g, deadline: now.Add(confirmDelay)}
		}
	case Shake:
		if !e.action.Valid {
			e.action = ActionState{Active: Shake, Valid: true}
		}
	}
	return e.action
}

// resolveConfirm takes the one confirmatory re-sample after the confirm
// window and escalates the pending Up/Down only if the classification still
// matches. A mismatch falls through without emitting anything; there is no
// retry and no timeout escalation.
func (e *Engine) resolveConfirm() {
	want := e.confirm.want
	e.confirm = confirmPhase{}

	s, ok := e.sample()
	if !ok || Classify(s) != want {
		return
	}

	g := GoForward
	if want == Down {
		g = Return
	}
	e.action = ActionState{Active: g, Valid: true, Sustained: true}
	e.applyEncoder(g)
}

// latch records a detected event and applies its encoder transition.
func (e *Engine) latch(g Gesture, sustained bool) {
	e.action = ActionState{Active: g, Valid: true, Sustained: sustained}
	e.applyEncoder(g)
}

// applyEncoder maps a detected gesture onto the virtual encoder. Gestures
// without encoder semantics leave the state untouched.
func (e *Engine) applyEncoder(g Gesture) {
	switch g {
	case TurnLeft:
		e.encoder.Diff--
	case TurnRight:
		e.encoder.Diff++
	case GoForward:
		e.encoder.Pressed = true
	case Return:
		e.encoder.Pressed = false
	}
}
