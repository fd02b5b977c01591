// Package alarm provides the audio collaborators for the timer: an
// oto-backed device that loops synthesized alarm tones, and a muted
// no-op device for silent hosts and tests.
package alarm

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"segclock/internal/domain"
	"segclock/internal/logger"
)

// Compile-time interface check.
var _ domain.AlarmDevice = (*Device)(nil)

// Device plays looping alarm tones through the system audio output.
// Safe for use from the host frame loop; all methods are non-blocking
// once the context is ready.
type Device struct {
	ctx *oto.Context
	log *logger.Logger

	mu      sync.Mutex
	players map[domain.SoundID]*oto.Player
	volumes map[domain.SoundID]int
	tones   map[domain.SoundID][]byte
}

// NewDevice initializes the system audio context. Returns
// ErrAudioUnavailable (wrapped) if no output device can be opened.
func NewDevice(log *logger.Logger) (*Device, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAudioUnavailable, err)
	}
	<-readyChan

	log.Debug("alarm device initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Device{
		ctx:     ctx,
		log:     log,
		players: make(map[domain.SoundID]*oto.Player),
		volumes: make(map[domain.SoundID]int),
		tones:   make(map[domain.SoundID][]byte),
	}, nil
}

// PlayLoop starts looping the tone for sound. Calling it again while
// the loop is running is a no-op, so the controller can request it
// every frame.
func (d *Device) PlayLoop(sound domain.SoundID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.players[sound]; ok && p.IsPlaying() {
		return
	}

	pcm, ok := d.tones[sound]
	if !ok {
		pcm = synthesize(motifFor(sound))
		d.tones[sound] = pcm
	}

	player := d.ctx.NewPlayer(newLoopReader(pcm))
	player.SetVolume(gain(d.volumeLocked(sound)))
	player.Play()
	d.players[sound] = player

	d.log.Debug("alarm looping: %s", sound)
}

// Stop halts playback of sound, if any.
func (d *Device) Stop(sound domain.SoundID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	player, ok := d.players[sound]
	if !ok {
		return
	}
	player.Pause()
	if err := player.Close(); err != nil {
		d.log.Warn("alarm player close: %v", err)
	}
	delete(d.players, sound)

	d.log.Debug("alarm stopped: %s", sound)
}

// SetVolume sets the playback volume for sound, clamping to [0, 100].
// Applies immediately if the sound is already looping.
func (d *Device) SetVolume(sound domain.SoundID, volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.volumes[sound] = volume
	if player, ok := d.players[sound]; ok {
		player.SetVolume(gain(volume))
	}
}

// volumeLocked returns the stored volume for sound, defaulting to full.
// Caller holds d.mu.
func (d *Device) volumeLocked(sound domain.SoundID) int {
	if v, ok := d.volumes[sound]; ok {
		return v
	}
	return 100
}

func gain(volume int) float64 {
	return float64(volume) / 100
}
