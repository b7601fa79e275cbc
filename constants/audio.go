package constants

import "time"

// Audio Engine Constants
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Eat Sound
const (
	EatSoundDuration    = 90 * time.Millisecond
	EatSoundFrequencyHz = 440.0
	EatSoundAmplitude   = 0.2
	EatSoundAttack      = 5 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundDuration    = 600 * time.Millisecond
	GameOverSoundFrequencyHz = 220.0
	GameOverSoundFloorHz     = 55.0
	GameOverSoundAmplitude   = 0.25
)
