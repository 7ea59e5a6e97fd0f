package mpris

import (
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/log"
)

// Playback statuses reported by MPRIS players.
const (
	StatusPlaying = "Playing"
	StatusPaused  = "Paused"
	StatusStopped = "Stopped"
)

// Player is a media surface backed by an MPRIS player. Commands are sent
// as D-Bus method calls; PropertiesChanged and Seeked signals are turned
// into lifecycle events.
type Player struct {
	event.Notifier

	dest    string
	conn    *dbus.Conn
	bo      dbus.BusObject
	signals chan *dbus.Signal
	done    chan struct{}

	mu      sync.Mutex
	status  string
	ended   bool
	pending []string
	current string
}

var _ omniplayer.MediaSurface = (*Player)(nil)

// NewPlayer connects to the player owning dest on the session bus. An
// empty dest picks the first player found.
func NewPlayer(dest string) (*Player, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}

	if dest == "" {
		dests, err := listPlayers(conn)
		if err != nil {
			return nil, err
		}
		dest = dests[0]
	}

	p := &Player{
		dest:    dest,
		conn:    conn,
		bo:      conn.Object(dest, DBusObjectPath),
		signals: make(chan *dbus.Signal, 16),
		done:    make(chan struct{}),
		status:  StatusStopped,
	}

	if v, err := p.bo.GetProperty(playerInterface + ".PlaybackStatus"); err == nil {
		if s, ok := v.Value().(string); ok {
			p.status = s
		}
	}

	err = conn.AddMatchSignal(
		dbus.WithMatchObjectPath(DBusObjectPath),
		dbus.WithMatchInterface(propertiesInterface),
		dbus.WithMatchMember("PropertiesChanged"),
	)
	if err != nil {
		return nil, err
	}
	err = conn.AddMatchSignal(
		dbus.WithMatchObjectPath(DBusObjectPath),
		dbus.WithMatchInterface(playerInterface),
		dbus.WithMatchMember("Seeked"),
	)
	if err != nil {
		return nil, err
	}
	conn.Signal(p.signals)

	go p.watch()

	return p, nil
}

// Name returns the bus name of the player instance.
func (p *Player) Name() string {
	return p.dest
}

// Close stops listening for signals.
func (p *Player) Close() error {
	p.conn.RemoveSignal(p.signals)
	close(p.done)

	return nil
}

func (p *Player) watch() {
	for {
		select {
		case sig := <-p.signals:
			p.handleSignal(sig)
		case <-p.done:
			return
		}
	}
}

// handleSignal updates the cached status and sends the events the signal
// implies.
func (p *Player) handleSignal(sig *dbus.Signal) {
	switch sig.Name {
	case propertiesInterface + ".PropertiesChanged":
		if len(sig.Body) < 2 {
			return
		}
		if iface, _ := sig.Body[0].(string); iface != playerInterface {
			return
		}
		changed, ok := sig.Body[1].(map[string]dbus.Variant)
		if !ok {
			return
		}

		if _, ok := changed["Metadata"]; ok {
			p.Send(event.LoadedData, nil)
		}
		if v, ok := changed["PlaybackStatus"]; ok {
			next, _ := v.Value().(string)
			for _, name := range p.transition(next) {
				p.Send(name, nil)
			}
		}
	case playerInterface + ".Seeked":
		p.Send(event.Seeked, nil)
	}
}

func (p *Player) transition(next string) []event.Name {
	p.mu.Lock()
	defer p.mu.Unlock()

	events := statusEvents(p.status, next)
	p.status = next
	switch next {
	case StatusPlaying:
		p.ended = false
	case StatusStopped:
		p.ended = len(events) > 0
	}

	return events
}

// statusEvents returns the lifecycle events a change of playback status
// corresponds to, in the order a media element would fire them.
func statusEvents(prev, next string) []event.Name {
	if prev == next {
		return nil
	}

	switch next {
	case StatusPlaying:
		return []event.Name{event.Play, event.Playing}
	case StatusPaused:
		return []event.Name{event.Pause}
	case StatusStopped:
		if prev == StatusPlaying {
			return []event.Name{event.Pause, event.Ended}
		}
		if prev == StatusPaused {
			return []event.Name{event.Ended}
		}
	}

	return nil
}

// call invokes a method of the Player interface. Failures are reported
// as media error events.
func (p *Player) call(method string, args ...interface{}) {
	call := p.bo.Call(playerInterface+"."+method, 0, args...)
	if call.Err != nil {
		log.WithFields(log.Fields{"dest": p.dest, "method": method}).WithError(call.Err).Warn("mpris call failed")
		p.Send(event.Error, omniplayer.NewMediaError(omniplayer.ErrCodePlaybackFailed, call.Err))
	}
}

func (p *Player) metadata() Metadata {
	v, err := p.bo.GetProperty(playerInterface + ".Metadata")
	if err != nil {
		return nil
	}

	m, _ := v.Value().(map[string]dbus.Variant)
	return Metadata(m)
}

// SetSource queues url to be opened by the next Play.
func (p *Player) SetSource(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = nil
	if url != "" {
		p.pending = []string{url}
	}
}

// AppendSource queues another candidate. MPRIS has no notion of
// alternatives, only the first queued source is opened.
func (p *Player) AppendSource(src omniplayer.Source) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = append(p.pending, src.Src)
}

// Play opens queued media, or resumes playback.
func (p *Player) Play() {
	p.mu.Lock()
	var uri string
	if len(p.pending) > 0 {
		uri = p.pending[0]
		p.current = uri
		p.pending = nil
	}
	p.mu.Unlock()

	if uri != "" {
		p.call("OpenUri", uri)
		return
	}
	p.call("Play")
}

// Pause pauses playback of the current content.
func (p *Player) Pause() {
	p.call("Pause")
}

// Stop stops the playback and resets the playback position.
func (p *Player) Stop() {
	p.call("Stop")
}

// Reload opens the current media again.
func (p *Player) Reload() {
	p.mu.Lock()
	uri := p.current
	if uri == "" && len(p.pending) > 0 {
		uri = p.pending[0]
	}
	p.mu.Unlock()

	if uri != "" {
		p.call("OpenUri", uri)
	}
}

// SeekTo sets the current playback position to pos.
func (p *Player) SeekTo(pos time.Duration) {
	p.Send(event.Seeking, nil)
	p.call("SetPosition", p.metadata().TrackID(), pos.Microseconds())
}

// IsPaused reports whether the player is not playing.
func (p *Player) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.status != StatusPlaying
}

// IsEnded reports whether playback stopped on its own.
func (p *Player) IsEnded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ended
}

// PlaybackPosition returns the current position of media playback from
// the beginning of media content.
func (p *Player) PlaybackPosition() time.Duration {
	v, err := p.bo.GetProperty(playerInterface + ".Position")
	if err != nil {
		return 0
	}

	pos, _ := v.Value().(int64)
	return time.Duration(pos) * time.Microsecond
}

// MediaDuration returns the duration of current loaded media.
func (p *Player) MediaDuration() time.Duration {
	return p.metadata().Duration()
}

// VolumeLevel returns the volume from 0 to 1.
func (p *Player) VolumeLevel() float64 {
	v, err := p.bo.GetProperty(playerInterface + ".Volume")
	if err != nil {
		return 0
	}

	level, _ := v.Value().(float64)
	return level
}

// SetVolumeLevel sets the volume from 0 to 1.
func (p *Player) SetVolumeLevel(level float64) {
	if err := p.bo.SetProperty(playerInterface+".Volume", dbus.MakeVariant(level)); err != nil {
		log.WithField("dest", p.dest).WithError(err).Warn("mpris set volume failed")
	}
}
