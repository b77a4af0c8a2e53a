// Package audio plays short tones for game events.
// Sound is optional: when the speaker cannot be opened the player stays
// silent and the game runs normally. The speaker backend needs cgo on most
// platforms and is only compiled with the "sound" build tag; default builds
// get ErrNoSpeaker from Init.
package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

const sampleRate = beep.SampleRate(44100)

// ErrNoSpeaker is returned by Init in builds without the "sound" tag.
var ErrNoSpeaker = errors.New("audio: built without sound support (rebuild with -tags sound)")

// Cue identifies a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueEat
	CueSpeedUp
	CueCrash
)

// CueFor picks the sound for a tick result. A crash outranks everything,
// a speed-up outranks the plain eat sound it happens with.
func CueFor(res snake.TickResult) Cue {
	switch {
	case res.Died:
		return CueCrash
	case res.SpeedChanged:
		return CueSpeedUp
	case res.Ate:
		return CueEat
	}
	return CueNone
}

// Player mixes cues onto the system speaker.
// A nil Player, or one whose Init failed, ignores every call.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
}

// NewPlayer creates a player. volume is linear, 0 to 1.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: math.Min(math.Max(volume, 0), 1),
	}
}

// Init opens the speaker. Errors are meant to be logged, not fatal.
func (p *Player) Init() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := openSpeaker(p.mixer); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Play starts the cue for a tick result, if any.
func (p *Player) Play(res snake.TickResult) {
	p.PlayCue(CueFor(res))
}

// PlayCue starts a cue.
func (p *Player) PlayCue(c Cue) {
	if p == nil || c == CueNone {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s := Streamer(c, p.volume)
	if s == nil {
		return
	}
	withSpeakerLock(func() { p.mixer.Add(s) })
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	withSpeakerLock(p.mixer.Clear)
	closeSpeaker()
	p.ready = false
}

// Streamer builds the finite stream for a cue.
func Streamer(c Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueEat:
		s = tone(880, 60*time.Millisecond)
	case CueSpeedUp:
		s = beep.Seq(tone(660, 50*time.Millisecond), tone(990, 80*time.Millisecond))
	case CueCrash:
		s = beep.Seq(tone(220, 120*time.Millisecond), tone(110, 220*time.Millisecond))
	default:
		return nil
	}
	return withVolume(s, volume)
}

// tone is a sine wave of the given frequency cut to d.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}

// withVolume scales s linearly. Zero volume is silent; log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
