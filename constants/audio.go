package constants

import "time"

// Volumes (linear, 0.0-1.0)
const (
	// MusicVolume is the background track target volume
	MusicVolume = 0.12

	// SFXVolume is the volume of every sound effect
	SFXVolume = 0.6
)

// Fade Shapes
const (
	// MusicFadeInSteps is the number of volume steps of a music fade in
	MusicFadeInSteps = 40

	// FadeOutSteps is the number of volume steps of a fade out
	FadeOutSteps = 30

	// MusicFadeInDuration is the music fade in after the start chime
	MusicFadeInDuration = 2 * time.Second

	// SoundTailFade is the fade applied to the last part of long chimes
	SoundTailFade = 2 * time.Second
)

// Audio Engine
const (
	// DefaultSampleRate is the speaker sample rate
	DefaultSampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// ResampleQuality is passed to beep.Resample
	ResampleQuality = 4
)
