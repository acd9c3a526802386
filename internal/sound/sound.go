// Package sound plays the short UI feedback tones. Everything is synthesized
// on the fly; there are no audio assets to decode.
package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tones are quiet accents, not alerts. Gain is relative: -0.7 leaves 30% of
// the raw sine amplitude.
const toneGain = -0.7

// Bank owns the speaker and synthesizes the feedback tones. A Bank whose
// speaker never opened swallows every play call, so callers never branch on
// audio availability.
type Bank struct {
	enabled bool
}

// NewBank opens the speaker with a 1/20s buffer. When enabled is false, or
// the speaker cannot be opened, the returned Bank is silent but still usable;
// the error is reported so the caller can log why audio is off.
func NewBank(enabled bool) (*Bank, error) {
	if !enabled {
		return &Bank{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return &Bank{}, fmt.Errorf("opening speaker: %w", err)
	}
	return &Bank{enabled: true}, nil
}

// Enabled reports whether tones will actually sound.
func (b *Bank) Enabled() bool { return b.enabled }

// Click is the press tone for the back-to-top control.
func (b *Bank) Click() { b.tone(880, 30*time.Millisecond) }

// Blip is the softer tone for nav link activation.
func (b *Bank) Blip() { b.tone(660, 50*time.Millisecond) }

func (b *Bank) tone(freq int, d time.Duration) {
	if !b.enabled {
		return
	}
	if s := buildTone(freq, d); s != nil {
		speaker.Play(s)
	}
}

// buildTone synthesizes one attenuated sine burst of the given length, or nil
// when the generator rejects the frequency (it needs at least two samples per
// period).
func buildTone(freq int, d time.Duration) beep.Streamer {
	s, err := generators.SinTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return &effects.Gain{
		Streamer: beep.Take(sampleRate.N(d), s),
		Gain:     toneGain,
	}
}
