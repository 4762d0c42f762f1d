package sound

import (
	"encoding/binary"
	"math"
	"testing"

	"virussim/internal/sim"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		ev   sim.Event
		want Kind
	}{
		{sim.Event{Type: sim.EventStep, Count: 3}, KindSpread},
		{sim.Event{Type: sim.EventMutation, Strain: 2}, KindMutation},
		{sim.Event{Type: sim.EventOutbreakOver}, KindOutbreakOver},
	}
	for _, tt := range tests {
		c, ok := CueFor(tt.ev)
		if !ok || c.Kind != tt.want {
			t.Errorf("CueFor(%+v) = %+v, %v; want kind %d", tt.ev, c, ok, tt.want)
		}
	}
	if _, ok := CueFor(sim.Event{Type: sim.EventType(99)}); ok {
		t.Errorf("unknown event should not map to a cue")
	}
}

func TestLimiterOnePerStep(t *testing.T) {
	l := NewLimiter()
	if !l.Allow(Cue{Kind: KindMutation, Step: 1}) {
		t.Fatal("first mutation cue should pass")
	}
	if l.Allow(Cue{Kind: KindMutation, Step: 1}) {
		t.Fatal("second mutation cue in the same step should be dropped")
	}
	if !l.Allow(Cue{Kind: KindSpread, Step: 1}) {
		t.Fatal("other kinds are limited independently")
	}
	if !l.Allow(Cue{Kind: KindMutation, Step: 2}) {
		t.Fatal("next step should pass")
	}
	if !l.Allow(Cue{Kind: KindOutbreakOver, Step: 3}) || l.Allow(Cue{Kind: KindOutbreakOver, Step: 4}) {
		t.Fatal("outbreak-over should play exactly once")
	}
}

func TestGenerateProducesBoundedStereo(t *testing.T) {
	for _, c := range []Cue{
		{Kind: KindSpread, Strain: 0, Count: 1},
		{Kind: KindSpread, Strain: 4, Count: 500},
		{Kind: KindMutation, Strain: 3},
		{Kind: KindOutbreakOver},
	} {
		buf := Generate(c)
		if len(buf) == 0 || len(buf)%bytesPerFrame != 0 {
			t.Fatalf("cue %+v: %d bytes", c, len(buf))
		}
		for o := 0; o < len(buf); o += bytesPerFrame {
			l := math.Float32frombits(binary.LittleEndian.Uint32(buf[o:]))
			r := math.Float32frombits(binary.LittleEndian.Uint32(buf[o+4:]))
			if l != r {
				t.Fatalf("cue %+v: channels differ at frame %d", c, o/bytesPerFrame)
			}
			if l < -1 || l > 1 || math.IsNaN(float64(l)) {
				t.Fatalf("cue %+v: sample %f out of range", c, l)
			}
		}
	}
	if Generate(Cue{Kind: Kind(42)}) != nil {
		t.Fatal("unknown kind should produce no samples")
	}
}
