package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/ericyan/omniplayer/internal/surfacetest"
	"github.com/ericyan/omniplayer/key"
	"github.com/ericyan/omniplayer/loop/looptest"
	"github.com/ericyan/omniplayer/player"
	"github.com/ericyan/omniplayer/view"
)

func newPlayer(opts ...player.Option) *player.Player {
	doc := view.NewDocument()
	doc.Body.AppendChild(view.NewNode(view.Element, "x"))

	opts = append(opts, player.WithID("x"), player.WithRegistry(player.NewRegistry()), player.WithAutoplay(false))
	p, err := player.New(doc, surfacetest.New(), looptest.New(), opts...)
	So(err, ShouldBeNil)

	return p
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		viper.Reset()
		So(Setup(), ShouldBeNil)

		Convey("Should populate defaults", func() {
			So(viper.GetFloat64(key.PlayerWidth), ShouldEqual, 600)
			So(viper.GetDuration(key.PlayerInactive), ShouldEqual, 3*time.Second)
			So(viper.GetString(key.Backend), ShouldEqual, "gcast")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace(key.PlayerControlsList), ShouldEqual, "player_controls_list")
		})
	})

	Convey("Environment overrides defaults", t, func() {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("OMNIPLAYER_PLAYER_VOLUME", "0.25")
		viper.Reset()
		So(Setup(), ShouldBeNil)

		So(viper.GetFloat64(key.PlayerVolume), ShouldEqual, 0.25)
	})
}

func TestPlayerOptions(t *testing.T) {
	Convey("PlayerOptions", t, func() {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		viper.Reset()
		So(Setup(), ShouldBeNil)

		Convey("Should ignore the loop plugin unless looping is enabled", func() {
			p := newPlayer(PlayerOptions()...)
			So(p.Config().Ignores, ShouldContain, "loop")
		})

		Convey("Should keep loop when player.loop is set", func() {
			viper.Set(key.PlayerLoop, true)
			p := newPlayer(PlayerOptions()...)
			So(p.Config().Ignores, ShouldNotContain, "loop")
		})

		Convey("Should carry sizes onto the container", func() {
			viper.Set(key.PlayerWidth, 320.0)
			p := newPlayer(PlayerOptions()...)
			So(p.Config().Width, ShouldEqual, 320)
			So(p.Root().Style("width"), ShouldEqual, "320px")
		})
	})
}
