// Package sound synthesizes the short procedural cues that accompany the
// outbreak: a tone when a step infects new nodes, a chirp when a strain
// mutates and a falling chord when the outbreak burns out.
package sound

import (
	"math"

	"virussim/internal/sim"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = 8 // stereo float32
)

// Kind identifies a cue.
type Kind int

const (
	KindSpread Kind = iota
	KindMutation
	KindOutbreakOver
)

// Cue is a request for one sound.
type Cue struct {
	Kind   Kind
	Strain int
	Count  int
	Step   int
}

// CueFor maps a simulation event to the cue it should play.
func CueFor(ev sim.Event) (Cue, bool) {
	switch ev.Type {
	case sim.EventStep:
		return Cue{Kind: KindSpread, Strain: ev.Strain, Count: ev.Count, Step: ev.Step}, true
	case sim.EventMutation:
		return Cue{Kind: KindMutation, Strain: ev.Strain, Step: ev.Step}, true
	case sim.EventOutbreakOver:
		return Cue{Kind: KindOutbreakOver, Count: ev.Count, Step: ev.Step}, true
	}
	return Cue{}, false
}

// Limiter lets at most one cue of each kind through per simulation step,
// and the outbreak-over cue through only once.
type Limiter struct {
	last map[Kind]int
	over bool
}

func NewLimiter() *Limiter {
	return &Limiter{last: make(map[Kind]int)}
}

func (l *Limiter) Allow(c Cue) bool {
	if c.Kind == KindOutbreakOver {
		if l.over {
			return false
		}
		l.over = true
		return true
	}
	if s, ok := l.last[c.Kind]; ok && s == c.Step {
		return false
	}
	l.last[c.Kind] = c.Step
	return true
}

// Generate renders a cue as interleaved stereo float32 LE samples.
func Generate(c Cue) []byte {
	switch c.Kind {
	case KindSpread:
		return genSpread(c.Strain, c.Count)
	case KindMutation:
		return genMutation(c.Strain)
	case KindOutbreakOver:
		return genOutbreakOver()
	}
	return nil
}

// strainFreq spaces strains a whole tone apart starting at A3.
func strainFreq(strain int) float64 {
	return 220 * math.Pow(2, float64(strain)*2/12)
}

// genSpread: soft FM blip, louder when more nodes fell this step.
func genSpread(strain, count int) []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	freq := strainFreq(strain)
	gain := 0.25 + 0.25*math.Min(1, float64(count)/50)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.2, 0.3)
		s := fm(t, freq, 2.0, 1.5*env) * env * gain
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMutation: quick upward chirp.
func genMutation(strain int) []byte {
	n := SampleRate * 70 / 1000
	buf := makeBuf(n)
	base := strainFreq(strain) * 2
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.3, 0.3)
		phase += 2 * math.Pi * base * (1 + p) / SampleRate
		s := math.Sin(phase) * env * 0.3
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genOutbreakOver: slow descending minor chord, staggered.
func genOutbreakOver() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.3
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * bytesPerFrame
	buf[o] = byte(v)
	buf[o+1] = byte(v >> 8)
	buf[o+2] = byte(v >> 16)
	buf[o+3] = byte(v >> 24)
	copy(buf[o+4:o+8], buf[o:o+4])
}

// softSat applies gentle tanh-like saturation, no hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func makeBuf(n int) []byte { return make([]byte, n*bytesPerFrame) }
