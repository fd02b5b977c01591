// Package countdown implements the timer state machine: wall-clock
// driven decrements, the shared control-operation debounce window, and
// the alarm-loop decision. The controller owns the displayed value and
// the current face bitmap; rendering and audio are injected.
package countdown

import (
	"image"
	"time"

	"segclock/internal/domain"
	"segclock/internal/logger"
)

// RenderFunc produces the face bitmap for a value. The controller calls
// it on every visible state change and keeps the result; it never
// mutates a previously returned image.
type RenderFunc func(value int) *image.RGBA

// Decrement window, in elapsed seconds. A decrement fires only when the
// sampled elapsed time lands inside [0.99, 1.01]: one second with a
// 0.01s jitter margin. If the host's frame cadence lets the elapsed
// time jump past 1.01s before a frame is sampled, that cycle does not
// decrement.
const (
	decrementWindowMin = 0.99
	decrementWindowMax = 1.01
)

// DefaultDebounceWindow is how long repeat Reset/Adjust calls are
// absorbed after one has been accepted.
const DefaultDebounceWindow = time.Second

// Option configures the controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to a silent logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithDebounceWindow overrides the control-operation debounce window.
func WithDebounceWindow(d time.Duration) Option {
	return func(c *Controller) {
		c.debounceWindow = d
	}
}

// Controller drives one countdown. All operations are synchronous and
// intended to be called from a single host loop; the clock is always an
// explicit millisecond timestamp so runs are replayable.
type Controller struct {
	log    *logger.Logger
	device domain.AlarmDevice
	sound  domain.SoundID
	render RenderFunc

	value         int
	originalValue int
	maxValue      int
	digitCount    int

	running  bool
	silenced bool

	lastDecrementTime int64 // millis; reference for the elapsed-second check
	debounceUntil     int64 // millis; 0 = no window active
	debounceWindow    time.Duration

	bitmap *image.RGBA
}

// New creates a controller counting down from initial. The caller
// supplies the display bounds (maxValue, digitCount) and the alarm
// sound; the initial face is rendered immediately.
func New(initial, maxValue, digitCount int, device domain.AlarmDevice, sound domain.SoundID, render RenderFunc, opts ...Option) *Controller {
	c := &Controller{
		log:            logger.New(logger.LevelOff, nil),
		device:         device,
		sound:          sound,
		render:         render,
		value:          initial,
		originalValue:  initial,
		maxValue:       maxValue,
		digitCount:     digitCount,
		debounceWindow: DefaultDebounceWindow,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bitmap = c.render(c.value)
	return c
}

// Start begins (or restarts) the countdown. Safe to call repeatedly:
// the running flag is idempotent, but each call resets the one-second
// reference, so a second Start restarts the current second.
func (c *Controller) Start(nowMillis int64) {
	c.running = true
	c.lastDecrementTime = nowMillis
	c.log.Debug("countdown started at value %d", c.value)
}

// Stop pauses the countdown. The value and bitmap stay as last
// rendered.
func (c *Controller) Stop() {
	c.running = false
	c.log.Debug("countdown stopped at value %d", c.value)
}

// Reset returns the value to the one the controller was created with,
// stops the alarm, and halts the countdown. Guarded by the debounce
// window: a Reset arriving inside the window of a previous Reset or
// Adjust does not touch the value. The window is refreshed and the
// alarm-silenced flag cleared on every call, guarded or not.
func (c *Controller) Reset(nowMillis int64) {
	if !c.debounced(nowMillis) {
		c.device.Stop(c.sound)
		c.value = c.originalValue
		c.running = false
		c.bitmap = c.render(c.value)
		c.log.Debug("countdown reset to %d", c.value)
	}
	c.debounceUntil = nowMillis + c.debounceWindow.Milliseconds()
	c.silenced = false
}

// Adjust shifts the value by delta plus one: Adjust(0) bumps the value
// by a single unit, so a host wanting an exact shift passes delta-1.
// The result is clamped to [0, maxValue]. Shares the debounce window
// with Reset; like Reset, the window refresh and silenced-flag clear
// happen even when the value change is absorbed.
func (c *Controller) Adjust(delta int, nowMillis int64) {
	if !c.debounced(nowMillis) {
		c.device.Stop(c.sound)
		candidate := c.value + delta + 1
		switch {
		case candidate > c.maxValue:
			c.value = c.maxValue
		case candidate < 0:
			c.value = 0
		default:
			c.value = candidate
		}
		c.bitmap = c.render(c.value)
		c.log.Debug("countdown adjusted by %+d to %d", delta, c.value)
	}
	c.debounceUntil = nowMillis + c.debounceWindow.Milliseconds()
	c.silenced = false
}

// Tick advances the countdown by one host frame. While running it
// checks the decrement window, re-renders the face with the current
// value, and then makes the alarm-loop decision, in that order — the
// bitmap after Tick always reflects a decrement made in the same call.
// Does nothing while stopped.
func (c *Controller) Tick(nowMillis int64) {
	if !c.running {
		return
	}

	elapsedSeconds := float64(nowMillis-c.lastDecrementTime) / 1000.0
	if c.value > 0 && elapsedSeconds >= decrementWindowMin && elapsedSeconds <= decrementWindowMax {
		c.value--
		c.lastDecrementTime = nowMillis
		c.log.Debug("countdown decremented to %d", c.value)
	}

	c.bitmap = c.render(c.value)

	if ShouldLoop(c.value, c.silenced) {
		c.device.PlayLoop(c.sound)
	}
}

// SilenceAlarm stops alarm playback and keeps it off until the next
// Reset or Adjust. The value and running state are untouched.
func (c *Controller) SilenceAlarm() {
	c.device.Stop(c.sound)
	c.silenced = true
	c.log.Debug("alarm silenced")
}

// RemainingDisplayValue reports the value one ahead of the stored one:
// value+1 while counting, 0 once the countdown has finished. This is a
// display-query convention, not an exact remaining-seconds reading.
func (c *Controller) RemainingDisplayValue() int {
	if c.value > 0 {
		return c.value + 1
	}
	return 0
}

// Bitmap returns the most recently rendered face.
func (c *Controller) Bitmap() *image.RGBA {
	return c.bitmap
}

// Value returns the currently displayed number.
func (c *Controller) Value() int { return c.value }

// OriginalValue returns the number the countdown resets to.
func (c *Controller) OriginalValue() int { return c.originalValue }

// MaxValue returns the display cap.
func (c *Controller) MaxValue() int { return c.maxValue }

// DigitCount returns the number of digit cells on the face.
func (c *Controller) DigitCount() int { return c.digitCount }

// Running reports whether the countdown is advancing.
func (c *Controller) Running() bool { return c.running }

// AlarmSilenced reports whether the user has silenced the alarm.
func (c *Controller) AlarmSilenced() bool { return c.silenced }

// debounced reports whether nowMillis falls inside the window opened by
// the last accepted control operation.
func (c *Controller) debounced(nowMillis int64) bool {
	return c.debounceUntil != 0 && nowMillis < c.debounceUntil
}
