// Package widget assembles the embeddable countdown timer: a controller
// bound to a theme, a face renderer, and an alarm device. The widget
// implements the Tickable and Renderable capabilities, so a host holds
// a reference and drives it once per frame instead of subclassing
// anything.
package widget

import (
	"fmt"
	"image"
	"time"

	"segclock/internal/countdown"
	"segclock/internal/domain"
	"segclock/internal/logger"
	"segclock/internal/render"
	"segclock/internal/theme"
)

// Compile-time interface checks.
var (
	_ domain.Tickable   = (*Widget)(nil)
	_ domain.Renderable = (*Widget)(nil)
)

// MaxInitialValue is the largest accepted countdown start value; larger
// requests are clamped to it (five full digits).
const MaxInitialValue = 99999

// Clock supplies the current time in milliseconds for the control
// operations that are not given one by the host.
type Clock func() int64

// Option configures a widget.
type Option func(*config)

type config struct {
	log      *logger.Logger
	device   domain.AlarmDevice
	themes   []theme.Theme
	clock    Clock
	debounce time.Duration
}

// WithLogger sets the logger. Defaults to a silent logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithAlarmDevice sets the audio collaborator. Without one the widget
// is silent: alarms are decided but nothing plays.
func WithAlarmDevice(device domain.AlarmDevice) Option {
	return func(c *config) { c.device = device }
}

// WithThemes replaces the built-in theme set, e.g. with one loaded from
// a user override file.
func WithThemes(themes []theme.Theme) Option {
	return func(c *config) { c.themes = themes }
}

// WithClock overrides the wall clock used by Start, Reset, and Adjust.
// Tick always takes its timestamp from the host.
func WithClock(clock Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithDebounceWindow overrides the Reset/Adjust debounce window.
func WithDebounceWindow(d time.Duration) Option {
	return func(c *config) { c.debounce = d }
}

// Widget is a self-contained countdown timer rendering to a
// seven-segment bitmap.
type Widget struct {
	ctrl   *countdown.Controller
	theme  theme.Theme
	device domain.AlarmDevice
	log    *logger.Logger
	clock  Clock
}

// New creates the default widget: a 60-second countdown on a two-digit
// display, standard theme, volume 80. Unlike the general constructor,
// the display cap is 60 rather than 99.
func New(opts ...Option) (*Widget, error) {
	return build(60, 0, 80, 60, opts...)
}

// NewTimer creates a widget counting down from initial. The digit count
// is derived from initial (at most five digits; larger values are
// clamped to 99999) and the display cap is 10^digitCount - 1.
// themeIndex must address the configured theme set and volume must be
// in [0, 100].
func NewTimer(initial, themeIndex, volume int, opts ...Option) (*Widget, error) {
	return build(initial, themeIndex, volume, 0, opts...)
}

// build assembles a widget. maxOverride, when non-zero, replaces the
// derived display cap (the default constructor pins it to 60).
func build(initial, themeIndex, volume, maxOverride int, opts ...Option) (*Widget, error) {
	cfg := &config{
		log:    logger.New(logger.LevelOff, nil),
		themes: theme.Builtins(),
		clock:  func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if volume < 0 || volume > 100 {
		return nil, fmt.Errorf("volume %d: %w", volume, domain.ErrInvalidVolume)
	}
	th, err := theme.From(cfg.themes, themeIndex)
	if err != nil {
		return nil, err
	}

	if initial < 0 {
		initial = 0
	}
	digitCount := render.SignificantDigits(initial)
	if initial > MaxInitialValue {
		initial = MaxInitialValue
		digitCount = 5
	}
	maxValue := maxDisplayValue(digitCount)
	if maxOverride > 0 {
		maxValue = maxOverride
	}

	device := cfg.device
	if device == nil {
		device = noopDevice{}
	}
	device.SetVolume(th.Sound, volume)

	w := &Widget{
		theme:  th,
		device: device,
		log:    cfg.log,
		clock:  cfg.clock,
	}

	ctrlOpts := []countdown.Option{countdown.WithLogger(cfg.log)}
	if cfg.debounce > 0 {
		ctrlOpts = append(ctrlOpts, countdown.WithDebounceWindow(cfg.debounce))
	}
	w.ctrl = countdown.New(initial, maxValue, digitCount, device, th.Sound,
		func(v int) *image.RGBA { return render.Face(v, digitCount, th) },
		ctrlOpts...)

	cfg.log.Info("timer created: value=%d digits=%d max=%d theme=%s volume=%d",
		initial, digitCount, maxValue, th.Name, volume)
	return w, nil
}

// Start begins the countdown.
func (w *Widget) Start() { w.ctrl.Start(w.clock()) }

// Stop pauses the countdown, leaving the display as-is.
func (w *Widget) Stop() { w.ctrl.Stop() }

// Reset restores the initial value and stops the countdown. Debounced.
func (w *Widget) Reset() { w.ctrl.Reset(w.clock()) }

// Adjust shifts the value by delta plus one, clamped to the display
// range. Debounced together with Reset.
func (w *Widget) Adjust(delta int) { w.ctrl.Adjust(delta, w.clock()) }

// Tick advances the widget by one host frame.
func (w *Widget) Tick(nowMillis int64) { w.ctrl.Tick(nowMillis) }

// SilenceAlarm turns off a sounding alarm without touching the value.
func (w *Widget) SilenceAlarm() { w.ctrl.SilenceAlarm() }

// RemainingDisplayValue reports the one-ahead display value.
func (w *Widget) RemainingDisplayValue() int { return w.ctrl.RemainingDisplayValue() }

// CurrentBitmap returns the latest rendered face.
func (w *Widget) CurrentBitmap() *image.RGBA { return w.ctrl.Bitmap() }

// Value returns the currently displayed number.
func (w *Widget) Value() int { return w.ctrl.Value() }

// MaxValue returns the display cap.
func (w *Widget) MaxValue() int { return w.ctrl.MaxValue() }

// DigitCount returns the number of digit cells on the face.
func (w *Widget) DigitCount() int { return w.ctrl.DigitCount() }

// Running reports whether the countdown is advancing.
func (w *Widget) Running() bool { return w.ctrl.Running() }

// AlarmSounding reports whether the alarm should currently be heard.
func (w *Widget) AlarmSounding() bool {
	return countdown.ShouldLoop(w.ctrl.Value(), w.ctrl.AlarmSilenced())
}

// Theme returns the widget's palette.
func (w *Widget) Theme() theme.Theme { return w.theme }

func maxDisplayValue(digitCount int) int {
	max := 1
	for i := 0; i < digitCount; i++ {
		max *= 10
	}
	return max - 1
}

// noopDevice keeps the controller's alarm calls harmless when no audio
// collaborator is configured.
type noopDevice struct{}

func (noopDevice) PlayLoop(domain.SoundID)       {}
func (noopDevice) Stop(domain.SoundID)           {}
func (noopDevice) SetVolume(domain.SoundID, int) {}
