package event

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBus(t *testing.T) {
	Convey("Bus", t, func() {
		b := NewBus()

		Convey("Should dispatch in subscription order", func() {
			var got []int
			b.On(Play, func(Event) { got = append(got, 1) })
			b.On(Play, func(Event) { got = append(got, 2) })
			b.On(Play, func(Event) { got = append(got, 3) })

			So(b.Emit(Play, nil), ShouldEqual, 3)
			So(got, ShouldResemble, []int{1, 2, 3})
		})

		Convey("Should pass name and payload", func() {
			var ev Event
			b.On(Error, func(e Event) { ev = e })
			b.Emit(Error, "boom")

			So(ev.Name, ShouldEqual, Error)
			So(ev.Payload, ShouldEqual, "boom")
		})

		Convey("Once should fire a single time", func() {
			n := 0
			b.Once(Pause, func(Event) { n++ })
			b.Emit(Pause, nil)
			b.Emit(Pause, nil)

			So(n, ShouldEqual, 1)
			So(b.Count(Pause), ShouldEqual, 0)
		})

		Convey("Off should remove only the given subscription", func() {
			var got []string
			id := b.On(Seeked, func(Event) { got = append(got, "a") })
			b.On(Seeked, func(Event) { got = append(got, "b") })

			So(b.Off(Seeked, id), ShouldBeTrue)
			So(b.Off(Seeked, id), ShouldBeFalse)
			b.Emit(Seeked, nil)

			So(got, ShouldResemble, []string{"b"})
		})

		Convey("Subscribing during dispatch should apply from the next Emit", func() {
			n := 0
			b.On(Ended, func(Event) {
				b.On(Ended, func(Event) { n++ })
			})

			b.Emit(Ended, nil)
			So(n, ShouldEqual, 0)

			b.Emit(Ended, nil)
			So(n, ShouldEqual, 1)
		})

		Convey("Emit with no subscribers should be a no-op", func() {
			So(b.Emit(Ready, nil), ShouldEqual, 0)
		})
	})
}

func TestNotifier(t *testing.T) {
	Convey("Notifier", t, func() {
		var n Notifier
		var got []Name

		cancel := n.Notify(func(e Event) { got = append(got, e.Name) })
		n.Notify(func(e Event) { got = append(got, "second") })

		n.Send(Play, nil)
		So(got, ShouldResemble, []Name{Play, "second"})

		cancel()
		cancel()
		got = nil
		n.Send(Pause, nil)
		So(got, ShouldResemble, []Name{"second"})
	})
}
