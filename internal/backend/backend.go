// Package backend opens the configured media surface and runs a player
// controller on it.
package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/config"
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/gcast"
	"github.com/ericyan/omniplayer/key"
	"github.com/ericyan/omniplayer/log"
	"github.com/ericyan/omniplayer/loop"
	"github.com/ericyan/omniplayer/mpris"
	"github.com/ericyan/omniplayer/player"
	"github.com/ericyan/omniplayer/view"
)

// Backend names.
const (
	GCast = "gcast"
	MPRIS = "mpris"
)

// ContainerID is the id of the node players are mounted on.
const ContainerID = "omniplayer"

// Surface is a media surface holding a connection.
type Surface interface {
	omniplayer.MediaSurface
	Close() error
}

// castSurface closes the receiver along with the sender.
type castSurface struct {
	*gcast.Sender
	r *gcast.Receiver
}

func (s *castSurface) Close() error {
	return errors.Join(s.Sender.Close(), s.r.Close())
}

// Open connects to the backend named by backend.name and returns the
// surface together with a display name for it.
func Open(ctx context.Context) (Surface, string, error) {
	switch name := viper.GetString(key.Backend); name {
	case GCast:
		return openCast(ctx)
	case MPRIS:
		p, err := mpris.NewPlayer(viper.GetString(key.BackendMPRISDest))
		if err != nil {
			return nil, "", fmt.Errorf("mpris: %w", err)
		}

		return p, p.Name(), nil
	default:
		return nil, "", fmt.Errorf("unknown backend %q", name)
	}
}

func openCast(ctx context.Context) (Surface, string, error) {
	ctx, cancel := context.WithTimeout(ctx, viper.GetDuration(key.BackendTimeout))
	defer cancel()

	info, err := gcast.Find(ctx, viper.GetString(key.BackendDevice))
	if err != nil {
		return nil, "", fmt.Errorf("gcast: %w", err)
	}
	log.WithFields(log.Fields{"name": info.Name, "uuid": info.UUID, "model": info.Model}).Info("found Google Cast device")

	r := gcast.NewReceiver(info)
	if err := r.Connect(ctx); err != nil {
		return nil, "", fmt.Errorf("gcast: connecting to %s: %w", info.Name, err)
	}

	s, err := gcast.NewSender(viper.GetString(key.BackendSenderID), r)
	if err != nil {
		r.Close()
		return nil, "", fmt.Errorf("gcast: %w", err)
	}

	return &castSurface{s, r}, info.Name, nil
}

// Session is a player controller running on its own loop.
type Session struct {
	Loop    *loop.Loop
	Player  *player.Player
	Surface Surface

	// Timeout bounds how long Close waits for the player to tear down.
	Timeout time.Duration

	cancel    context.CancelFunc
	stopped   chan struct{}
	err       error
	closeOnce sync.Once
	closeErr  error
}

// Start mounts a player on surface and runs its loop. Options are
// applied after the configured ones. The loop outlives ctx so that Close
// can still pause and destroy the player after ctx is done.
func Start(ctx context.Context, surface Surface, opts ...player.Option) (*Session, error) {
	doc := view.NewDocument()
	doc.Body.AppendChild(view.NewNode(view.Element, ContainerID))

	l := loop.New()
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s := &Session{
		Loop:    l,
		Surface: surface,
		Timeout: viper.GetDuration(key.BackendTimeout),
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(s.stopped)
		s.err = l.Run(loopCtx)
	}()

	opts = append(append(config.PlayerOptions(), player.WithID(ContainerID)), opts...)

	var err error
	if derr := l.Do(func() { s.Player, err = player.New(doc, surface, l, opts...) }); derr != nil {
		err = derr
	}
	if err != nil {
		cancel()
		<-s.stopped
		return nil, err
	}

	return s, nil
}

// Do runs fn on the session loop and waits for it.
func (s *Session) Do(fn func()) error {
	return s.Loop.Do(fn)
}

// Close destroys the player and waits, up to Timeout, for the destroy
// event, so a playing surface gets its pause first. It then stops the
// loop and releases the surface. Calling Close again returns the first
// result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		destroyed := make(chan struct{})
		err := s.Loop.Do(func() {
			if s.Player.Destroyed() {
				close(destroyed)
				return
			}

			s.Player.Bus().Once(event.Destroy, func(event.Event) { close(destroyed) })
			if err := s.Player.Destroy(); err != nil && !errors.Is(err, player.ErrDestroyed) {
				log.WithError(err).Warn("destroying player failed")
			}
		})

		if err == nil {
			timeout := s.Timeout
			if timeout <= 0 {
				timeout = config.Default[key.BackendTimeout].Value.(time.Duration)
			}

			select {
			case <-destroyed:
			case <-time.After(timeout):
				log.WithField("timeout", timeout).Warn("player not destroyed in time, closing anyway")
			}
		}

		s.cancel()
		<-s.stopped
		s.closeErr = s.Surface.Close()
	})

	return s.closeErr
}

// Wait blocks until the loop stops, which happens once Close is done.
func (s *Session) Wait() error {
	<-s.stopped
	if errors.Is(s.err, context.Canceled) {
		return nil
	}

	return s.err
}

// BindFlags adds the backend and playback flags shared by the commands
// and binds them to their settings.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP("backend", "b", GCast, "Media backend: gcast or mpris")
	fs.StringP("device", "d", "", "Cast device friendly name; the first device found when empty")
	fs.String("mpris-dest", "", "MPRIS bus name; the first player found when empty")
	fs.Duration("timeout", config.Default[key.BackendTimeout].Value.(time.Duration), "How long to look for a backend device")
	fs.Float64("volume", config.Default[key.PlayerVolume].Value.(float64), "Initial volume from 0 to 1")
	fs.Bool("loop", false, "Replay media when it ends")

	for flag, k := range map[string]string{
		"backend":    key.Backend,
		"device":     key.BackendDevice,
		"mpris-dest": key.BackendMPRISDest,
		"timeout":    key.BackendTimeout,
		"volume":     key.PlayerVolume,
		"loop":       key.PlayerLoop,
	} {
		lo.Must0(viper.BindPFlag(k, fs.Lookup(flag)))
	}
}
