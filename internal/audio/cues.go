// internal/audio/cues.go
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"go-point-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short synthesized sound.
type Cue struct {
	Freq     float64       // start frequency, Hz
	Sweep    float64       // frequency change over the cue, Hz
	Duration time.Duration // total length
	Volume   float64
}

var cues = map[event.EventType]Cue{
	event.ProjectileFired: {Freq: 880, Sweep: -440, Duration: 60 * time.Millisecond, Volume: 0.15},
	event.DeathBegan:      {Freq: 220, Sweep: -160, Duration: 250 * time.Millisecond, Volume: 0.3},
	event.EntitySpawned:   {Freq: 330, Sweep: 110, Duration: 90 * time.Millisecond, Volume: 0.1},
}

// Subscriber is the part of the World the cue player listens on.
type Subscriber interface {
	Subscribe(eventType event.EventType, listener event.Listener)
}

// Player turns simulation events into sounds. Without an initialised
// speaker it stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      zerolog.Logger
}

func NewPlayer(logger zerolog.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Attach subscribes the player to every event with a cue.
func (p *Player) Attach(s Subscriber) {
	for t := range cues {
		s.Subscribe(t, p)
	}
}

func (p *Player) OnEvent(e event.Event) {
	streamer, ok := Streamer(e.Type)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	p.logger.Trace().Str("event", string(e.Type)).Msg("cue queued")
}

// Streamer builds the sound for an event type.
func Streamer(t event.EventType) (beep.Streamer, bool) {
	cue, ok := cues[t]
	if !ok {
		return nil, false
	}
	return beep.Take(sampleRate.N(cue.Duration), newChirp(sampleRate, cue)), true
}

// chirp is a sine sweep with a linear decay.
type chirp struct {
	sr    beep.SampleRate
	cue   Cue
	total int
	pos   int
	phase float64
}

func newChirp(sr beep.SampleRate, cue Cue) *chirp {
	return &chirp{sr: sr, cue: cue, total: sr.N(cue.Duration)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := 0.0
		if c.total > 0 {
			progress = math.Min(float64(c.pos)/float64(c.total), 1)
		}
		freq := c.cue.Freq + c.cue.Sweep*progress
		sample := math.Sin(2*math.Pi*c.phase) * c.cue.Volume * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample

		c.phase += freq / float64(c.sr)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error {
	return nil
}
