package av

import (
	"math"
	"net/url"
	"path"
	"time"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/player"
	"github.com/ericyan/omniplayer/upnp/internal/didl"
)

// PlayerRenderer is a Renderer driving a player controller. The
// controller is single-threaded, so every call runs through do, which
// must execute fn on the controller's loop and wait for it.
type PlayerRenderer struct {
	p  *player.Player
	do func(fn func()) error

	uri      string
	metadata string
	stopped  bool
	muted    bool
	level    float64
}

var _ Renderer = (*PlayerRenderer)(nil)

// NewPlayerRenderer returns a Renderer for p.
func NewPlayerRenderer(p *player.Player, do func(fn func()) error) *PlayerRenderer {
	return &PlayerRenderer{p: p, do: do}
}

func (r *PlayerRenderer) run(fn func() error) error {
	var err error
	if derr := r.do(func() { err = fn() }); derr != nil {
		return derr
	}

	return err
}

func (r *PlayerRenderer) live() error {
	if r.p.Destroyed() {
		return player.ErrDestroyed
	}

	return nil
}

// defaultMetadata describes uri when the control point sent none.
func defaultMetadata(uri string) string {
	title := uri
	if u, err := url.Parse(uri); err == nil && path.Base(u.Path) != "/" && path.Base(u.Path) != "." {
		title = path.Base(u.Path)
	}

	text, err := didl.NewItem(title, "object.item.videoItem", uri, "*").MarshalText()
	if err != nil {
		return ""
	}

	return string(text)
}

func (r *PlayerRenderer) Load(uri, metadata string) error {
	return r.run(func() error {
		if err := r.p.StartMedia(omniplayer.URL(uri)); err != nil {
			return err
		}

		if metadata == "" {
			metadata = defaultMetadata(uri)
		}
		r.uri, r.metadata = uri, metadata
		r.stopped = false

		return nil
	})
}

func (r *PlayerRenderer) Play() error {
	return r.run(func() error {
		if err := r.live(); err != nil {
			return err
		}

		r.stopped = false
		if r.p.State().Ended {
			return r.p.Replay()
		}
		r.p.Play()

		return nil
	})
}

func (r *PlayerRenderer) Pause() error {
	return r.run(func() error {
		if err := r.live(); err != nil {
			return err
		}

		r.p.Pause()
		return nil
	})
}

func (r *PlayerRenderer) Stop() error {
	return r.run(func() error {
		if err := r.live(); err != nil {
			return err
		}

		r.stopped = true
		r.p.Stop()
		return nil
	})
}

func (r *PlayerRenderer) Seek(pos time.Duration) error {
	return r.run(func() error {
		if err := r.live(); err != nil {
			return err
		}

		r.p.SeekTo(pos)
		return nil
	})
}

// state maps the controller state onto the AVTransport state machine.
func (r *PlayerRenderer) state() TransportState {
	s := r.p.State()

	switch {
	case r.uri == "" || r.p.Destroyed():
		return NoMediaPresent
	case r.stopped || s.Ended:
		return Stopped
	case s.Buffering:
		return Transitioning
	case s.Playing && !s.Paused && !s.Started:
		return Transitioning
	case s.Playing && !s.Paused:
		return Playing
	case s.Paused && s.Started:
		return PausedPlayback
	default:
		return Stopped
	}
}

func (r *PlayerRenderer) Status() Status {
	var st Status
	r.do(func() {
		surface := r.p.Surface()
		d := surface.MediaDuration()

		st = Status{
			State:    r.state(),
			URI:      r.uri,
			Metadata: r.metadata,
			Position: clampPosition(surface.PlaybackPosition(), d),
			Duration: d,
			Errored:  r.p.State().Errored,
		}
	})

	return st
}

// clampPosition clamps pos into [0, d] when d is known.
func clampPosition(pos, d time.Duration) time.Duration {
	if pos < 0 {
		return 0
	}
	if d > 0 && pos > d {
		return d
	}

	return pos
}

func (r *PlayerRenderer) Volume() int {
	var vol int
	r.do(func() {
		level := r.p.Surface().VolumeLevel()
		if r.muted {
			level = r.level
		}
		vol = int(math.Round(level * 100))
	})

	return vol
}

func (r *PlayerRenderer) SetVolume(vol int) error {
	return r.run(func() error {
		level := float64(vol) / 100
		if r.muted {
			r.level = level
			return nil
		}

		r.p.Surface().SetVolumeLevel(level)
		return nil
	})
}

func (r *PlayerRenderer) Muted() bool {
	var muted bool
	r.do(func() { muted = r.muted })

	return muted
}

// SetMuted silences the surface, remembering the level to restore.
func (r *PlayerRenderer) SetMuted(muted bool) error {
	return r.run(func() error {
		if muted == r.muted {
			return nil
		}

		surface := r.p.Surface()
		if muted {
			r.level = surface.VolumeLevel()
			surface.SetVolumeLevel(0)
		} else {
			surface.SetVolumeLevel(r.level)
		}
		r.muted = muted

		return nil
	})
}
