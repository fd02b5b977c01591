package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrInvalidTheme     = errors.New("theme index out of range")
	ErrInvalidVolume    = errors.New("volume out of range")
	ErrAudioUnavailable = errors.New("audio device unavailable")
)
