// Package audio plays short buzzes when the line editor refuses a key.
// Sound goes to the audio device through beep's speaker, never to the terminal,
// so it cannot disturb the column bookkeeping of the edited line.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rawline/terminal"
)

const (
	sampleRate       = beep.SampleRate(48000)
	speakerBufferMs  = 100
	refuseDurationMs = 60
	refuseFreqEdge   = 220.0 // Cursor or buffer boundary
	refuseFreqRecall = 150.0 // No history entry
)

// Feedback plays audible cues; every method is a no-op until Initialize succeeds
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewFeedback creates an uninitialized feedback player
func NewFeedback() *Feedback {
	return &Feedback{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferMs)); err != nil {
		return err
	}

	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Enabled reports whether the speaker is open
func (f *Feedback) Enabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initialized
}

// Cleanup silences pending sounds; the speaker itself stays open for the process
func (f *Feedback) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}

	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
	f.initialized = false
}

// Refuse plays the cue for a refused key; it matches lineedit's refuse hook
func (f *Feedback) Refuse(k terminal.Key) {
	freq := refuseFreqEdge
	if k == terminal.KeyUp || k == terminal.KeyDown {
		freq = refuseFreqRecall
	}
	f.play(freq, refuseDurationMs)
}

func (f *Feedback) play(freq float64, durationMs int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Duration(durationMs)*time.Millisecond), NewBuzzGenerator(sampleRate, freq))
	speaker.Lock()
	f.mixer.Add(streamer)
	speaker.Unlock()
	f.played++
}

// Played returns the number of cues queued since creation
func (f *Feedback) Played() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.played
}
