// Package omniplayer defines the capabilities a media surface offers to
// the player controller. Implementations live in the gcast and mpris
// packages; the controller itself is in package player.
package omniplayer

import (
	"time"

	"github.com/ericyan/omniplayer/event"
)

// MediaSurface is a playable element. Commands are fire-and-forget; the
// outcome is reported through lifecycle events.
type MediaSurface interface {
	SourceBinder
	PlaybackController
	PlaybackStateReporter
	VolumeController
	EventNotifier
}

// Source is one candidate rendition of the media.
type Source struct {
	Src  string `json:"src"`
	Type string `json:"type,omitempty"`
}

// Media is either a single URL or an ordered list of sources, the first
// being preferred.
type Media struct {
	URL     string
	Sources []Source
}

// URL returns Media for a single URL.
func URL(u string) Media {
	return Media{URL: u}
}

// Sources returns Media for an ordered list of sources.
func Sources(srcs ...Source) Media {
	return Media{Sources: srcs}
}

// IsZero reports whether m names no media at all.
func (m Media) IsZero() bool {
	return m.URL == "" && len(m.Sources) == 0
}

// Preferred returns the URL to play: the single URL, or the first source.
func (m Media) Preferred() string {
	if m.URL != "" || len(m.Sources) == 0 {
		return m.URL
	}

	return m.Sources[0].Src
}

// SourceBinder binds media to the surface.
type SourceBinder interface {
	// SetSource replaces any bound media with a single URL.
	SetSource(url string)
	// AppendSource adds a candidate source after those already bound.
	AppendSource(src Source)
}

// PlaybackController provides methods for controlling media playback.
type PlaybackController interface {
	Play()
	Pause()
	Stop()
	SeekTo(pos time.Duration)
	// Reload reloads the bound media from the start.
	Reload()
}

// PlaybackStateReporter retrieves media playback state.
type PlaybackStateReporter interface {
	IsPaused() bool
	IsEnded() bool
	PlaybackPosition() time.Duration
	MediaDuration() time.Duration
}

// VolumeController provides methods for adjusting volume settings.
type VolumeController interface {
	VolumeLevel() float64
	SetVolumeLevel(level float64)
}

// EventNotifier delivers lifecycle events (play, pause, playing, waiting,
// seeking, seeked, ended, loadeddata and error).
type EventNotifier interface {
	// Notify registers h and returns a function that unregisters it. h may
	// be called from any goroutine.
	Notify(h event.Handler) (cancel func())
}
