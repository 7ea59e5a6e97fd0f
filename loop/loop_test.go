package loop

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoop(t *testing.T) {
	Convey("Loop", t, func() {
		l := New()
		ctx, cancel := context.WithCancel(context.Background())
		stopped := make(chan struct{})
		go func() {
			l.Run(ctx)
			close(stopped)
		}()
		Reset(func() {
			cancel()
			<-stopped
		})

		Convey("Should run posted tasks in order", func() {
			var got []int
			err := l.Do(func() {
				l.Post(func() { got = append(got, 1) })
				l.Post(func() { got = append(got, 2) })
			})
			So(err, ShouldBeNil)

			So(l.Do(func() {}), ShouldBeNil)
			So(l.Do(func() { got = append(got, 3) }), ShouldBeNil)
			So(got, ShouldResemble, []int{1, 2, 3})
		})

		Convey("Should run timers on the loop", func() {
			fired := make(chan struct{})
			l.AfterFunc(time.Millisecond, func() { close(fired) })

			select {
			case <-fired:
			case <-time.After(time.Second):
				t.Error("timer did not fire")
			}
		})

		Convey("A stopped timer should not fire", func() {
			fired := false
			var tm Timer
			So(l.Do(func() {
				tm = l.AfterFunc(time.Millisecond, func() { fired = true })
			}), ShouldBeNil)
			So(tm.Stop(), ShouldBeTrue)
			So(tm.Stop(), ShouldBeFalse)

			time.Sleep(10 * time.Millisecond)
			So(l.Do(func() {}), ShouldBeNil)
			So(fired, ShouldBeFalse)
		})

		Convey("Do should fail once the loop has stopped", func() {
			cancel()
			<-stopped

			So(l.Do(func() {}), ShouldEqual, ErrClosed)
		})
	})
}
