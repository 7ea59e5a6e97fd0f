// Package surfacetest provides an in-memory media surface for tests.
package surfacetest

import (
	"time"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/event"
)

// Surface records commands and lets tests emit lifecycle events. It
// starts paused, like a freshly created media element.
type Surface struct {
	event.Notifier

	Paused   bool
	Ended    bool
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Source   string
	Sources  []omniplayer.Source

	Calls []string
}

var _ omniplayer.MediaSurface = (*Surface)(nil)

// New returns a paused surface.
func New() *Surface {
	return &Surface{Paused: true}
}

func (s *Surface) record(call string) {
	s.Calls = append(s.Calls, call)
}

// Count returns how many times the named command was issued.
func (s *Surface) Count(call string) int {
	n := 0
	for _, c := range s.Calls {
		if c == call {
			n++
		}
	}

	return n
}

// Emit sends an event to the registered handlers after updating the
// surface state the way a media element would.
func (s *Surface) Emit(name event.Name, payload interface{}) {
	switch name {
	case event.Play, event.Playing:
		s.Paused = false
		s.Ended = false
	case event.Pause:
		s.Paused = true
	case event.Ended:
		s.Paused = true
		s.Ended = true
	}

	s.Send(name, payload)
}

func (s *Surface) SetSource(url string) {
	s.record("src")
	s.Source = url
	s.Sources = nil
}

func (s *Surface) AppendSource(src omniplayer.Source) {
	s.record("source")
	s.Sources = append(s.Sources, src)
}

func (s *Surface) Play()   { s.record("play") }
func (s *Surface) Pause()  { s.record("pause") }
func (s *Surface) Stop()   { s.record("stop") }
func (s *Surface) Reload() { s.record("reload") }

func (s *Surface) SeekTo(pos time.Duration) {
	s.record("seek")
	s.Position = pos
}

func (s *Surface) IsPaused() bool                  { return s.Paused }
func (s *Surface) IsEnded() bool                   { return s.Ended }
func (s *Surface) PlaybackPosition() time.Duration { return s.Position }
func (s *Surface) MediaDuration() time.Duration    { return s.Duration }
func (s *Surface) VolumeLevel() float64            { return s.Volume }

func (s *Surface) SetVolumeLevel(level float64) {
	s.record("volume")
	s.Volume = level
}
