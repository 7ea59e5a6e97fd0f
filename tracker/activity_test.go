package tracker

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ericyan/omniplayer/loop/looptest"
)

func TestActivity(t *testing.T) {
	Convey("Activity", t, func() {
		clock := looptest.New()
		playing := true
		a := NewActivity(clock, 0, func() bool { return playing })

		var changes []bool
		a.OnChange = func(active bool) { changes = append(changes, active) }
		a.OnExpire = func() { a.Blur() }

		Convey("Should start active with the default timeout", func() {
			So(a.Active(), ShouldBeTrue)
			So(a.Timeout(), ShouldEqual, 3*time.Second)
			So(a.Armed(), ShouldBeFalse)
		})

		Convey("Should turn inactive once the timer expires while playing", func() {
			a.Arm()
			clock.Advance(2999 * time.Millisecond)
			So(a.Active(), ShouldBeTrue)

			clock.Advance(time.Millisecond)
			So(a.Active(), ShouldBeFalse)
			So(changes, ShouldResemble, []bool{false})
			So(a.Armed(), ShouldBeFalse)

			clock.Advance(time.Minute)
			So(changes, ShouldResemble, []bool{false})
		})

		Convey("Should ignore an expiry after playback paused", func() {
			a.Arm()
			clock.Advance(time.Second)
			playing = false

			clock.Advance(5 * time.Second)
			So(a.Active(), ShouldBeTrue)
			So(changes, ShouldBeEmpty)
		})

		Convey("Focus should reactivate and restart the countdown", func() {
			a.Arm()
			clock.Advance(3 * time.Second)
			So(a.Active(), ShouldBeFalse)

			a.Focus()
			So(a.Active(), ShouldBeTrue)
			So(clock.Delays(), ShouldResemble, []time.Duration{3 * time.Second})

			clock.Advance(2 * time.Second)
			a.Focus()
			clock.Advance(2 * time.Second)
			So(a.Active(), ShouldBeTrue)

			clock.Advance(time.Second)
			So(a.Active(), ShouldBeFalse)
			So(changes, ShouldResemble, []bool{false, true, false})
		})

		Convey("Focusing twice should leave one live timer", func() {
			a.Focus()
			a.Focus()

			So(clock.Pending(), ShouldEqual, 1)
		})

		Convey("Stop should cancel the timer", func() {
			a.Arm()
			a.Stop()
			clock.Advance(time.Minute)

			So(clock.Pending(), ShouldEqual, 0)
			So(a.Active(), ShouldBeTrue)
		})
	})
}
