package backend

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/ericyan/omniplayer/config"
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/internal/surfacetest"
	"github.com/ericyan/omniplayer/player"
)

// remoteSurface is a playing surface that acknowledges a pause after a
// delay, from another goroutine, the way a network backend does. Once
// closed it sends nothing.
type remoteSurface struct {
	*surfacetest.Surface

	ack time.Duration

	mu     sync.Mutex
	pauses int
	closed bool
}

func newRemoteSurface(ack time.Duration) *remoteSurface {
	return &remoteSurface{Surface: surfacetest.New(), ack: ack}
}

func (s *remoteSurface) IsPaused() bool { return false }

func (s *remoteSurface) Pause() {
	s.mu.Lock()
	s.pauses++
	s.mu.Unlock()

	if s.ack <= 0 {
		return
	}
	time.AfterFunc(s.ack, func() {
		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()

		if !closed {
			s.Send(event.Pause, nil)
		}
	})
}

func (s *remoteSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *remoteSurface) stats() (pauses int, closed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pauses, s.closed
}

func startSession(ctx context.Context, surface Surface) (*Session, *atomic.Int32) {
	var destroys atomic.Int32
	bus := event.NewBus()
	bus.On(event.Destroy, func(event.Event) { destroys.Add(1) })

	sess, err := Start(ctx, surface,
		player.WithBus(bus), player.WithRegistry(player.NewRegistry()), player.WithAutoplay(false))
	So(err, ShouldBeNil)

	return sess, &destroys
}

func TestSessionClose(t *testing.T) {
	Convey("Given a session on a playing remote surface", t, func() {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		viper.Reset()
		So(config.Setup(), ShouldBeNil)

		Convey("Close should wait for the pause before releasing the surface", func() {
			surface := newRemoteSurface(20 * time.Millisecond)
			sess, destroys := startSession(context.Background(), surface)

			So(sess.Close(), ShouldBeNil)

			pauses, closed := surface.stats()
			So(pauses, ShouldEqual, 1)
			So(closed, ShouldBeTrue)
			So(destroys.Load(), ShouldEqual, 1)
			So(sess.Player.Destroyed(), ShouldBeTrue)
			So(sess.Player.Root().Parent(), ShouldBeNil)
		})

		Convey("Close should still tear down after the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			surface := newRemoteSurface(20 * time.Millisecond)
			sess, destroys := startSession(ctx, surface)

			cancel()
			So(sess.Close(), ShouldBeNil)

			pauses, _ := surface.stats()
			So(pauses, ShouldEqual, 1)
			So(destroys.Load(), ShouldEqual, 1)
		})

		Convey("Close should give up on a surface that never acknowledges", func() {
			surface := newRemoteSurface(0)
			sess, destroys := startSession(context.Background(), surface)
			sess.Timeout = 50 * time.Millisecond

			start := time.Now()
			So(sess.Close(), ShouldBeNil)
			So(time.Since(start), ShouldBeLessThan, time.Second)

			_, closed := surface.stats()
			So(closed, ShouldBeTrue)
			So(destroys.Load(), ShouldEqual, 0)
		})

		Convey("Wait should return once closed, and Close twice is harmless", func() {
			sess, _ := startSession(context.Background(), newRemoteSurface(time.Millisecond))

			So(sess.Close(), ShouldBeNil)
			So(sess.Wait(), ShouldBeNil)
			So(sess.Close(), ShouldBeNil)
		})
	})
}
