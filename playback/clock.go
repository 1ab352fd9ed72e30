// Package playback provides the transport clock the compositor reads.
// The clock models an externally driven video timebase: it advances on
// its own wall-clock schedule while playing, and seeks move it
// discontinuously, forwards or backwards. The compositor never assumes
// the clock is monotonic; absorbing its jumps is the smoother's job.
package playback

import (
	"sync"
	"time"
)

// Clock is a playback position driven by the wall clock. The zero
// value is not usable; construct with [NewClock]. All methods are safe
// for concurrent use, since transport commands and the decode pipeline
// may touch the clock from outside the game loop goroutine.
type Clock struct {
	mu       sync.Mutex
	position float64
	duration float64
	rate     float64
	playing  bool
	lastTick time.Time
	now      func() time.Time
}

// NewClock creates a paused clock at position zero. A duration of 0
// means "unknown"; the position is then unbounded above until
// [Clock.SetDuration] is called (typically once source metadata
// becomes available).
func NewClock(duration float64) *Clock {
	return &Clock{duration: duration, rate: 1.0, now: time.Now}
}

// NewClockAt is like [NewClock] but with an explicit time function.
// Used by tests to drive the clock deterministically.
func NewClockAt(duration float64, now func() time.Time) *Clock {
	return &Clock{duration: duration, rate: 1.0, now: now}
}

// advance folds elapsed wall time into the position. Callers must hold mu.
func (self *Clock) advance() {
	if !self.playing {
		return
	}
	now := self.now()
	self.position += now.Sub(self.lastTick).Seconds() * self.rate
	self.lastTick = now
	self.clamp()
}

// clamp bounds the position and pauses at the end. Callers must hold mu.
func (self *Clock) clamp() {
	if self.position < 0 {
		self.position = 0
	}
	if self.duration > 0 && self.position >= self.duration {
		self.position = self.duration
		self.playing = false
	}
}

// Play starts or resumes playback. Playing past the end restarts from
// the beginning, the way a looping preview player behaves.
func (self *Clock) Play() {
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.playing {
		return
	}
	if self.duration > 0 && self.position >= self.duration {
		self.position = 0
	}
	self.playing = true
	self.lastTick = self.now()
}

// Pause freezes the position.
func (self *Clock) Pause() {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.advance()
	self.playing = false
}

// Toggle switches between playing and paused.
func (self *Clock) Toggle() {
	self.mu.Lock()
	playing := self.playing
	self.mu.Unlock()
	if playing {
		self.Pause()
	} else {
		self.Play()
	}
}

// IsPlaying reports whether the clock is currently advancing.
func (self *Clock) IsPlaying() bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.advance()
	return self.playing
}

// Current returns the playback position in seconds.
func (self *Clock) Current() float64 {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.advance()
	return self.position
}

// SeekTo jumps to the given position, clamped to [0, duration].
func (self *Clock) SeekTo(position float64) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.position = position
	self.lastTick = self.now()
	self.clamp()
}

// SeekBy jumps by the given offset, clamped to [0, duration].
func (self *Clock) SeekBy(offset float64) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.advance()
	self.position += offset
	self.clamp()
}

// Duration returns the total duration in seconds, 0 if unknown.
func (self *Clock) Duration() float64 {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.duration
}

// SetDuration updates the total duration. Passing 0 marks the duration
// unknown again.
func (self *Clock) SetDuration(duration float64) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.duration = duration
	self.clamp()
}

// Rate returns the playback rate multiplier.
func (self *Clock) Rate() float64 {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.rate
}

// SetRate changes the playback rate multiplier (1 = real time).
// Non-positive rates are ignored.
func (self *Clock) SetRate(rate float64) {
	if rate <= 0 {
		return
	}
	self.mu.Lock()
	defer self.mu.Unlock()
	self.advance()
	self.rate = rate
}
