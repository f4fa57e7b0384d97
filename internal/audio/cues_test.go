package audio

import (
	"testing"
	"time"

	"go-point-defense/internal/event"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subscriptions map[event.EventType]int

func (s subscriptions) Subscribe(t event.EventType, _ event.Listener) {
	s[t]++
}

func TestStreamerLength(t *testing.T) {
	s, ok := Streamer(event.ProjectileFired)
	require.True(t, ok)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			assert.LessOrEqual(t, smp[0], 1.0)
			assert.GreaterOrEqual(t, smp[0], -1.0)
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(60*time.Millisecond), total)
	assert.NoError(t, s.Err())
}

func TestStreamerUnknownEvent(t *testing.T) {
	_, ok := Streamer(event.EntityRemoved)
	assert.False(t, ok)
}

func TestAttachSubscribesCues(t *testing.T) {
	subs := subscriptions{}
	NewPlayer(zerolog.Nop()).Attach(subs)
	assert.Equal(t, 1, subs[event.ProjectileFired])
	assert.Equal(t, 1, subs[event.DeathBegan])
	assert.Equal(t, 1, subs[event.EntitySpawned])
}

func TestSilentPlayerIgnoresEvents(t *testing.T) {
	p := NewPlayer(zerolog.Nop())
	assert.NotPanics(t, func() {
		p.OnEvent(event.Event{Type: event.DeathBegan})
	})
	assert.Equal(t, 0, p.mixer.Len())
}
