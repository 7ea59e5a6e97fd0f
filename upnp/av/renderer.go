// Package av implements the UPnP AV MediaRenderer device and its
// services on top of a Renderer.
package av

import (
	"time"

	"github.com/ericyan/omniplayer/upnp"
)

// TransportState is the AVTransport TransportState state variable.
type TransportState string

// Transport states.
const (
	Stopped        TransportState = "STOPPED"
	Playing        TransportState = "PLAYING"
	Transitioning  TransportState = "TRANSITIONING"
	PausedPlayback TransportState = "PAUSED_PLAYBACK"
	NoMediaPresent TransportState = "NO_MEDIA_PRESENT"
)

// Status is a snapshot of what the renderer is playing.
type Status struct {
	State    TransportState
	URI      string
	Metadata string
	Position time.Duration
	Duration time.Duration
	Errored  bool
}

// Renderer is the playback engine behind the services. Methods may be
// called from any goroutine.
type Renderer interface {
	// Load binds uri, with its DIDL-Lite metadata, without starting it.
	Load(uri, metadata string) error
	Play() error
	Pause() error
	Stop() error
	Seek(pos time.Duration) error
	Status() Status

	// Volume is from 0 to 100.
	Volume() int
	SetVolume(vol int) error
	Muted() bool
	SetMuted(muted bool) error
}

// NewMediaRenderer returns a MediaRenderer UPnP device.
//
// Spec: http://upnp.org/specs/av/UPnP-av-MediaRenderer-v1-Device.pdf
func NewMediaRenderer(name string, r Renderer) *upnp.Device {
	dev := upnp.NewDevice(name, "MediaRenderer", 1)

	dev.RegisterService(AVTransport(r))
	dev.RegisterService(RenderingControl(r))
	dev.RegisterService(ConnectionManager())

	return dev
}
