package alarm

import (
	"segclock/internal/domain"
	"segclock/internal/logger"
)

// Compile-time interface check.
var _ domain.AlarmDevice = (*Muted)(nil)

// Muted is an alarm device that produces no sound. Used when the host
// runs with audio disabled or no output device exists.
type Muted struct {
	log *logger.Logger
}

// NewMuted creates a silent alarm device.
func NewMuted(log *logger.Logger) *Muted {
	return &Muted{log: log}
}

// PlayLoop does nothing.
func (m *Muted) PlayLoop(sound domain.SoundID) {
	m.log.Debug("muted alarm: would loop %s", sound)
}

// Stop does nothing.
func (m *Muted) Stop(sound domain.SoundID) {}

// SetVolume does nothing.
func (m *Muted) SetVolume(sound domain.SoundID, volume int) {}
