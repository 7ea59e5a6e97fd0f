// Package plugins registers the built-in installers with the default
// registry. Import it for its side effects:
//
//	import _ "github.com/ericyan/omniplayer/plugins"
package plugins

import (
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/log"
	"github.com/ericyan/omniplayer/player"
)

// Names of the built-in installers.
const (
	LoggerName = "logger"
	LoopName   = "loop"
)

func init() {
	Register(player.DefaultRegistry())
}

// Register installs the built-in installers into r.
func Register(r *player.Registry) {
	r.Install(LoggerName, Logger)
	r.Install(LoopName, Loop)
}

// logged lists the events Logger reports.
var logged = []event.Name{
	event.Ready, event.Complete, event.Destroy, event.Error,
	event.Play, event.Pause, event.Playing, event.Waiting,
	event.Seeking, event.Seeked, event.Ended, event.LoadedData,
}

// Logger logs player events at debug level, and errors at error level.
func Logger(p *player.Player) error {
	entry := log.WithFields(log.Fields{"player": p.ID().String()})

	for _, name := range logged {
		name := name
		p.Bus().On(name, func(ev event.Event) {
			if name == event.Error {
				entry.WithField("payload", ev.Payload).Error("player error")
				return
			}

			entry.WithField("position", p.Surface().PlaybackPosition()).Debugf("event %s", name)
		})
	}

	return nil
}

// Loop replays media whenever it ends. Leave it out with the ignore list
// to disable looping.
//
// The replay is posted so that it runs after the player has handled the
// ended event itself.
func Loop(p *player.Player) error {
	p.Bus().On(event.Ended, func(event.Event) {
		p.Scheduler().Post(func() {
			if err := p.Replay(); err != nil {
				log.WithField("player", p.ID().String()).WithError(err).Warn("loop replay failed")
			}
		})
	})

	return nil
}
