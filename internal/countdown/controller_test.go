package countdown

import (
	"image"
	"testing"
	"time"

	"segclock/internal/domain"
)

// fakeDevice records alarm calls for assertions.
type fakeDevice struct {
	loops   int
	stops   int
	volumes []int
}

func (f *fakeDevice) PlayLoop(domain.SoundID) { f.loops++ }
func (f *fakeDevice) Stop(domain.SoundID)     { f.stops++ }
func (f *fakeDevice) SetVolume(_ domain.SoundID, v int) {
	f.volumes = append(f.volumes, v)
}

// fakeRender records every rendered value.
type fakeRender struct {
	values []int
}

func (f *fakeRender) render(v int) *image.RGBA {
	f.values = append(f.values, v)
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

func newTestController(initial, maxValue, digitCount int) (*Controller, *fakeDevice, *fakeRender) {
	dev := &fakeDevice{}
	fr := &fakeRender{}
	c := New(initial, maxValue, digitCount, dev, "test", fr.render)
	return c, dev, fr
}

func TestFullCountdownToAlarm(t *testing.T) {
	c, dev, _ := newTestController(2, 99, 2)

	c.Start(0)
	c.Tick(1000)
	if c.Value() != 1 {
		t.Fatalf("after first second: value %d, want 1", c.Value())
	}
	c.Tick(2000)
	if c.Value() != 0 {
		t.Fatalf("after second second: value %d, want 0", c.Value())
	}
	if dev.loops == 0 {
		t.Fatal("alarm should loop once the countdown hits zero")
	}

	// Value stays pinned at zero and the loop keeps being requested.
	loops := dev.loops
	c.Tick(3000)
	if c.Value() != 0 {
		t.Fatalf("value went below zero: %d", c.Value())
	}
	if dev.loops <= loops {
		t.Fatal("alarm loop should be requested every running tick at zero")
	}

	c.SilenceAlarm()
	if dev.stops == 0 {
		t.Fatal("silencing should stop playback")
	}
	loops = dev.loops
	c.Tick(4000)
	if dev.loops != loops {
		t.Fatal("silenced alarm must not be re-requested")
	}
}

func TestAdjustAppliesPlusOneOffset(t *testing.T) {
	c, _, _ := newTestController(5, 99, 2)
	c.Adjust(0, 0)
	if c.Value() != 6 {
		t.Fatalf("Adjust(0) on 5: got %d, want 6", c.Value())
	}
}

func TestAdjustClampsToMax(t *testing.T) {
	c, _, _ := newTestController(9000, 9999, 4)
	c.Adjust(1000, 0)
	if c.Value() != 9999 {
		t.Fatalf("got %d, want clamp to 9999", c.Value())
	}
}

func TestAdjustClampsToZero(t *testing.T) {
	c, _, _ := newTestController(3, 99, 2)
	c.Adjust(-10, 0)
	if c.Value() != 0 {
		t.Fatalf("got %d, want clamp to 0", c.Value())
	}
}

func TestAdjustStopsAlarmPlayback(t *testing.T) {
	c, dev, _ := newTestController(1, 99, 2)
	c.Start(0)
	c.Tick(1000) // 1 -> 0, alarm loops
	if dev.loops == 0 {
		t.Fatal("expected alarm at zero")
	}

	c.Adjust(4, 2000)
	if dev.stops == 0 {
		t.Fatal("adjust should stop the alarm")
	}
	if c.Value() != 5 {
		t.Fatalf("got %d, want 5", c.Value())
	}
}

func TestResetRestoresOriginalAndStops(t *testing.T) {
	c, dev, _ := newTestController(10, 99, 2)
	c.Start(0)
	c.Tick(1000)
	if c.Value() != 9 {
		t.Fatalf("setup: value %d", c.Value())
	}

	c.Reset(2000)
	if c.Value() != 10 {
		t.Fatalf("reset: value %d, want 10", c.Value())
	}
	if c.Running() {
		t.Fatal("reset should stop the countdown")
	}
	if dev.stops == 0 {
		t.Fatal("reset should stop the alarm")
	}
}

func TestResetDebouncedWithinWindow(t *testing.T) {
	c, _, _ := newTestController(10, 99, 2)

	c.Adjust(5, 0) // value 16, window open until 1000
	if c.Value() != 16 {
		t.Fatalf("setup: value %d", c.Value())
	}

	c.SilenceAlarm()
	c.Reset(500)
	if c.Value() != 16 {
		t.Fatalf("debounced reset changed the value to %d", c.Value())
	}
	if c.AlarmSilenced() {
		t.Fatal("a debounced reset still clears the silenced flag")
	}

	// The debounced call refreshed the window: 1100 is still inside.
	c.Reset(1100)
	if c.Value() != 16 {
		t.Fatalf("refreshed window should absorb reset at 1100, value %d", c.Value())
	}

	// The call at 1100 refreshed the window again, until 2100.
	c.Reset(2500)
	if c.Value() != 10 {
		t.Fatalf("reset after window should apply, value %d", c.Value())
	}
}

func TestAdjustDebouncedAfterReset(t *testing.T) {
	// Reset and Adjust share one window.
	c, _, _ := newTestController(10, 99, 2)
	c.Reset(0)
	c.Adjust(5, 400)
	if c.Value() != 10 {
		t.Fatalf("adjust inside reset's window should be absorbed, value %d", c.Value())
	}
	c.Adjust(5, 1500)
	if c.Value() != 16 {
		t.Fatalf("adjust after window: value %d, want 16", c.Value())
	}
}

func TestStartThenStopLeavesValue(t *testing.T) {
	c, _, _ := newTestController(30, 99, 2)
	c.Start(0)
	c.Stop()
	c.Tick(1000)
	if c.Value() != 30 {
		t.Fatalf("value %d, want 30", c.Value())
	}
}

func TestTickOutsideWindowDoesNotDecrement(t *testing.T) {
	c, _, _ := newTestController(30, 99, 2)
	c.Start(0)

	c.Tick(500) // too early
	if c.Value() != 30 {
		t.Fatalf("early tick decremented to %d", c.Value())
	}

	c.Tick(1500) // frame hitch: elapsed skipped past the window
	if c.Value() != 30 {
		t.Fatalf("late tick decremented to %d", c.Value())
	}
}

func TestWindowBoundaries(t *testing.T) {
	c, _, _ := newTestController(30, 99, 2)
	c.Start(0)
	c.Tick(990) // exactly 0.99s
	if c.Value() != 29 {
		t.Fatalf("0.99s tick should decrement, value %d", c.Value())
	}
	c.Tick(990 + 1010) // exactly 1.01s since the decrement
	if c.Value() != 28 {
		t.Fatalf("1.01s tick should decrement, value %d", c.Value())
	}
}

func TestStartRestartsSecondWindow(t *testing.T) {
	c, _, _ := newTestController(30, 99, 2)
	c.Start(0)
	c.Start(600) // restarts the one-second reference
	c.Tick(1000) // only 0.4s since the second Start
	if c.Value() != 30 {
		t.Fatalf("value %d, want 30", c.Value())
	}
	c.Tick(1600)
	if c.Value() != 29 {
		t.Fatalf("value %d, want 29", c.Value())
	}
}

func TestRendersEveryRunningTick(t *testing.T) {
	c, _, fr := newTestController(30, 99, 2)
	if len(fr.values) != 1 {
		t.Fatalf("construction should render once, got %d", len(fr.values))
	}

	c.Tick(100) // not running: no render
	if len(fr.values) != 1 {
		t.Fatal("idle tick should not render")
	}

	c.Start(0)
	c.Tick(100)
	c.Tick(200)
	c.Tick(1000)
	if len(fr.values) != 4 {
		t.Fatalf("3 running ticks should add 3 renders, got %d total", len(fr.values))
	}
	// The render in the decrementing tick sees the new value.
	if fr.values[len(fr.values)-1] != 29 {
		t.Fatalf("last rendered value %d, want 29", fr.values[len(fr.values)-1])
	}
}

func TestRemainingDisplayValue(t *testing.T) {
	c, _, _ := newTestController(5, 99, 2)
	if got := c.RemainingDisplayValue(); got != 6 {
		t.Fatalf("got %d, want 6 (one-ahead convention)", got)
	}

	c.Start(0)
	for now := int64(1000); c.Value() > 0; now += 1000 {
		c.Tick(now)
	}
	if got := c.RemainingDisplayValue(); got != 0 {
		t.Fatalf("at zero: got %d, want 0", got)
	}
}

func TestBitmapReplacedNotMutated(t *testing.T) {
	c, _, _ := newTestController(5, 99, 2)
	before := c.Bitmap()
	c.Start(0)
	c.Tick(1000)
	if c.Bitmap() == before {
		t.Fatal("tick while running should produce a fresh bitmap")
	}
}

func TestShouldLoop(t *testing.T) {
	cases := []struct {
		value    int
		silenced bool
		want     bool
	}{
		{0, false, true},
		{0, true, false},
		{1, false, false},
		{1, true, false},
	}
	for _, cse := range cases {
		if got := ShouldLoop(cse.value, cse.silenced); got != cse.want {
			t.Errorf("ShouldLoop(%d, %v) = %v, want %v", cse.value, cse.silenced, got, cse.want)
		}
	}
}

func TestCustomDebounceWindow(t *testing.T) {
	dev := &fakeDevice{}
	fr := &fakeRender{}
	c := New(10, 99, 2, dev, "test", fr.render, WithDebounceWindow(200*time.Millisecond))

	c.Adjust(5, 0)
	c.Adjust(5, 300)
	if c.Value() != 22 {
		t.Fatalf("short window should admit the second adjust, value %d", c.Value())
	}
}
