package plugins

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/internal/surfacetest"
	"github.com/ericyan/omniplayer/loop/looptest"
	"github.com/ericyan/omniplayer/player"
	"github.com/ericyan/omniplayer/view"
)

func TestPlugins(t *testing.T) {
	Convey("Built-in plugins", t, func() {
		doc := view.NewDocument()
		doc.Body.AppendChild(view.NewNode(view.Element, "x"))
		surface := surfacetest.New()
		clock := looptest.New()
		r := player.NewRegistry()
		Register(r)

		Convey("Should register in order", func() {
			So(r.Names(), ShouldResemble, []string{LoggerName, LoopName})
			So(player.DefaultRegistry().Names(), ShouldContain, LoopName)
		})

		Convey("Loop should replay ended media", func() {
			p, err := player.New(doc, surface, clock, player.WithID("x"), player.WithURL("a.mp4"), player.WithRegistry(r))
			So(err, ShouldBeNil)
			So(p.Plugins(), ShouldResemble, []string{LoggerName, LoopName})

			surface.Emit(event.Ended, nil)
			clock.Flush()
			So(surface.Count("seek"), ShouldEqual, 1)
			So(surface.Count("play"), ShouldEqual, 1)
			So(p.State().Ended, ShouldBeFalse)
		})

		Convey("Ignoring loop should leave ended media alone", func() {
			p, err := player.New(doc, surface, clock, player.WithID("x"), player.WithIgnores(LoopName), player.WithRegistry(r))
			So(err, ShouldBeNil)
			So(p.Plugins(), ShouldResemble, []string{LoggerName})

			surface.Emit(event.Ended, nil)
			clock.Flush()
			So(surface.Count("play"), ShouldEqual, 0)
			So(p.State().Ended, ShouldBeTrue)
		})
	})
}
