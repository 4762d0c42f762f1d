package game

import (
	"bytes"

	"github.com/hajimehoshi/oto/v2"

	"virussim/internal/sim"
	"virussim/internal/sound"
)

const sfxVolume = 0.5

// maxVoices caps simultaneous cues so a burst of events cannot pile up players.
const maxVoices = 4

// AudioSystem plays procedural cues for simulation events. Finished players
// are closed from the frame loop via Reap, so nothing here runs on its own
// goroutine.
type AudioSystem struct {
	ctx     *oto.Context
	ready   chan struct{}
	limiter *sound.Limiter
	voices  []oto.Player
}

// InitAudio opens the output device.
func InitAudio() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{ctx: ctx, ready: ready, limiter: sound.NewLimiter()}, nil
}

// Attach subscribes the audio system to the engine's events.
func (a *AudioSystem) Attach(bus *sim.EventBus) {
	if a == nil {
		return
	}
	handler := func(ev sim.Event) {
		if cue, ok := sound.CueFor(ev); ok {
			a.Play(cue)
		}
	}
	bus.Subscribe(sim.EventStep, handler)
	bus.Subscribe(sim.EventMutation, handler)
	bus.Subscribe(sim.EventOutbreakOver, handler)
}

// Play starts a cue unless the device is not ready yet, the limiter drops it
// or all voices are busy.
func (a *AudioSystem) Play(cue sound.Cue) {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	a.Reap()
	if len(a.voices) >= maxVoices || !a.limiter.Allow(cue) {
		return
	}
	samples := sound.Generate(cue)
	if len(samples) == 0 {
		return
	}
	player := a.ctx.NewPlayer(bytes.NewReader(samples))
	player.SetVolume(sfxVolume)
	player.Play()
	a.voices = append(a.voices, player)
}

// Reap closes players that have finished.
func (a *AudioSystem) Reap() {
	if a == nil {
		return
	}
	live := a.voices[:0]
	for _, p := range a.voices {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	a.voices = live
}

func (a *AudioSystem) Close() {
	if a == nil {
		return
	}
	for _, p := range a.voices {
		p.Close()
	}
	a.voices = nil
}
