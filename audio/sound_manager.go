package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/ecs-snake/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays short feedback cues through a shared mixer
// Every method is safe to call before Initialize or after Cleanup; calls are then no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no way to release the device without closing it for the process;
	// clearing the mixer ensures no audio artifacts after the game ends
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEat plays a short rising chirp when food is eaten
func (sm *SoundManager) PlayEat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	tone, err := generators.SineTone(sampleRate, constants.EatSoundFrequencyHz)
	if err != nil {
		return
	}
	streamer := beep.Take(sampleRate.N(constants.EatSoundDuration), NewEnvelope(sampleRate, tone, constants.EatSoundAmplitude))
	sm.add(streamer)
}

// PlayGameOver plays a falling tone when the snake runs into itself
func (sm *SoundManager) PlayGameOver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(constants.GameOverSoundDuration), NewFallGenerator(sampleRate))
	sm.add(streamer)
}

// add must be called with sm.mu held
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Envelope scales a streamer with a short linear attack to avoid clicks
type Envelope struct {
	sr        beep.SampleRate
	src       beep.Streamer
	amplitude float64
	attack    int
	pos       int
}

// NewEnvelope wraps a streamer with an attack ramp and fixed gain
func NewEnvelope(sr beep.SampleRate, src beep.Streamer, amplitude float64) *Envelope {
	return &Envelope{
		sr:        sr,
		src:       src,
		amplitude: amplitude,
		attack:    sr.N(constants.EatSoundAttack),
	}
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		gain := e.amplitude
		if e.attack > 0 && e.pos < e.attack {
			gain *= float64(e.pos) / float64(e.attack)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error {
	return e.src.Err()
}

// FallGenerator generates an exponentially falling tone
type FallGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewFallGenerator creates a game over tone generator
func NewFallGenerator(sr beep.SampleRate) *FallGenerator {
	return &FallGenerator{sr: sr}
}

func (g *FallGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(constants.GameOverSoundDuration))
	ratio := constants.GameOverSoundFloorHz / constants.GameOverSoundFrequencyHz
	for i := range samples {
		progress := math.Min(float64(g.pos)/total, 1.0)

		// Frequency falls from start to floor over the whole duration
		freq := constants.GameOverSoundFrequencyHz * math.Pow(ratio, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := 1.0 - progress
		sample := constants.GameOverSoundAmplitude * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FallGenerator) Err() error {
	return nil
}
