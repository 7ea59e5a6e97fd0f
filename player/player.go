// Package player binds a media surface to a container node, installs
// plugins, and maps surface events onto UI state.
//
// A Player is not safe for concurrent use. Construct it and call its
// methods on the goroutine running its scheduler (see loop.Loop.Do).
package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/device"
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/log"
	"github.com/ericyan/omniplayer/loop"
	"github.com/ericyan/omniplayer/tracker"
	"github.com/ericyan/omniplayer/view"
)

// Errors returned by the player.
var (
	ErrNoContainer = errors.New("container id can't be empty")
	ErrNoMedia     = errors.New("no media to start")
	ErrDestroyed   = errors.New("player destroyed")
)

// Class is the prefix of every state class set on the container.
const Class = "omniplayer"

// State classes set on the container.
const (
	ClassNoStart    = Class + "-nostart"
	ClassPlaying    = Class + "-playing"
	ClassPause      = Class + "-pause"
	ClassEnded      = Class + "-ended"
	ClassInactive   = Class + "-inactive"
	ClassLoading    = Class + "-isloading"
	ClassError      = Class + "-is-error"
	ClassReplay     = Class + "-replay"
	ClassControls   = Class + "-controls"
	ClassNoControls = "no-controls"
)

// historySize bounds the number of surface events kept by History.
const historySize = 128

// State is the UI-facing projection of playback. Several flags can be set
// at once.
type State struct {
	Active    bool
	Buffering bool
	Playing   bool
	Paused    bool
	Ended     bool
	Started   bool
	Errored   bool
}

// Player is the controller for one media surface.
type Player struct {
	id      uuid.UUID
	cfg     Config
	surface omniplayer.MediaSurface
	sched   loop.Scheduler
	bus     *event.Bus
	log     *logrus.Entry
	device  device.Class

	root     *view.Node
	controls *view.Node
	media    *view.Node

	activity  *tracker.Activity
	buffering *tracker.Buffering
	replay    mo.Option[func()]

	state    State
	history  []event.Name
	plugins  []string
	handlers map[event.Name]uint64
	unnotify func()

	destroying bool
	destroyed  bool
}

// New constructs a player on the node of doc with the configured ID, or
// on the configured element. If neither is usable it emits a single
// KindUsage error event and returns the same error without touching any
// node. An installer error aborts construction and is returned.
func New(doc *view.Document, surface omniplayer.MediaSurface, sched loop.Scheduler, opts ...Option) (*Player, error) {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bus == nil {
		o.bus = event.NewBus()
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}

	p := &Player{
		id:      uuid.New(),
		cfg:     o.cfg.clone(),
		surface: surface,
		sched:   sched,
		bus:     o.bus,
		device:  device.Sniff(o.cfg.UserAgent),
	}
	p.log = log.WithFields(log.Fields{"player": p.id.String()})

	p.root = doc.FindByID(p.cfg.ID)
	if p.root == nil {
		if !p.cfg.Element.IsElement() {
			err := &omniplayer.Error{
				Kind:    omniplayer.KindUsage,
				Subject: p.cfg.ID,
				Context: map[string]string{"handle": "New", "msg": ErrNoContainer.Error()},
				Err:     ErrNoContainer,
			}
			p.bus.Emit(event.Error, err)

			return nil, err
		}
		p.root = p.cfg.Element
	}

	markers := []string{Class, Class + "-" + p.device.String(), ClassNoStart}
	if !p.cfg.Controls {
		markers = append(markers, ClassNoControls)
	}
	p.root.AddClass(strings.Join(markers, " "))

	p.controls = view.NewNode(view.Controls, "")
	p.controls.AddClass(ClassControls)
	p.controls.SetAttr("unselectable", "on")
	p.root.AppendChild(p.controls)

	p.root.SetStyle("width", px(p.cfg.Width))
	p.root.SetStyle("height", px(p.cfg.Height))

	p.media = p.newMediaNode()
	p.surface.SetVolumeLevel(p.cfg.Volume)

	p.activity = tracker.NewActivity(sched, p.cfg.Inactive, p.isPlaying)
	p.activity.OnExpire = func() { p.bus.Emit(event.Blur, nil) }
	p.activity.OnChange = p.setActive
	p.buffering = tracker.NewBuffering(sched)
	p.buffering.OnChange = p.setBuffering
	p.state = State{Active: true, Paused: surface.IsPaused()}

	// Queued ahead of anything an installer posts, so ready always
	// precedes complete.
	aborted := false
	sched.Post(func() {
		if !aborted && !p.destroyed {
			p.bus.Emit(event.Ready, nil)
		}
	})

	applied, err := o.registry.Apply(p, p.device, p.cfg.Ignores)
	if err != nil {
		aborted = true
		p.log.WithError(err).Error("plugin failed, aborting construction")
		return nil, err
	}
	p.plugins = applied

	p.handlers = make(map[event.Name]uint64)
	for _, h := range p.handlerTable() {
		p.handlers[h.name] = p.bus.On(h.name, h.fn)
	}
	p.unnotify = surface.Notify(func(ev event.Event) {
		sched.Post(func() { p.forward(ev) })
	})

	p.log.WithFields(log.Fields{
		"device":  p.device.String(),
		"plugins": applied,
	}).Debug("player constructed")

	if p.cfg.Autoplay {
		if err := p.Start(); err != nil {
			p.log.WithError(err).Warn("autoplay failed")
		}
	}

	return p, nil
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func (p *Player) newMediaNode() *view.Node {
	n := view.NewNode(view.Video, "")
	n.SetAttr("controlslist", strings.Join(p.cfg.ControlsList, " "))
	if p.cfg.Autoplay {
		n.SetAttr("autoplay", "autoplay")
	}

	return n
}

// forward re-emits a surface event on the bus.
func (p *Player) forward(ev event.Event) {
	if p.destroyed {
		return
	}

	p.history = append(p.history, ev.Name)
	if len(p.history) > historySize {
		p.history = p.history[len(p.history)-historySize:]
	}

	p.bus.Emit(ev.Name, ev.Payload)
}

func (p *Player) isPlaying() bool {
	return !p.surface.IsPaused() && !p.surface.IsEnded()
}

// Start binds the configured media and mounts the media node.
func (p *Player) Start() error {
	return p.StartMedia(p.cfg.Media)
}

// StartMedia binds m to the surface and mounts the media node as the
// first child of the container. A single URL becomes the src attribute;
// a list of sources becomes one source child per entry, in order. It arms
// the inactivity timer, plays once when autoplay is configured, and emits
// complete on a later tick.
func (p *Player) StartMedia(m omniplayer.Media) error {
	if p.destroying {
		return ErrDestroyed
	}
	if m.IsZero() {
		return ErrNoMedia
	}

	if p.media.Parent() != nil {
		p.media.Detach()
		p.media = p.newMediaNode()
	}

	if m.URL != "" {
		p.media.SetAttr("src", m.URL)
		p.surface.SetSource(m.URL)
	} else {
		p.surface.SetSource("")
		for _, src := range m.Sources {
			n := view.NewNode(view.Source, "")
			n.SetAttr("src", src.Src)
			n.SetAttr("type", src.Type)
			p.media.AppendChild(n)
			p.surface.AppendSource(src)
		}
	}
	p.root.InsertFirst(p.media)

	p.activity.Arm()
	if p.cfg.Autoplay {
		p.surface.Play()
	}

	p.sched.Post(func() {
		if !p.destroyed {
			p.bus.Emit(event.Complete, nil)
		}
	})

	p.log.WithField("media", m.Preferred()).Debug("media started")

	return nil
}

// Reload reloads the media and resumes playback once data is available.
func (p *Player) Reload() error {
	if p.destroying {
		return ErrDestroyed
	}

	p.surface.Reload()
	p.bus.Once(event.LoadedData, func(event.Event) {
		if !p.destroying {
			p.surface.Play()
		}
	})

	return nil
}

// SetReplay installs a strategy Replay defers to.
func (p *Player) SetReplay(fn func()) {
	if fn == nil {
		p.replay = mo.None[func()]()
		return
	}
	p.replay = mo.Some(fn)
}

// Replay clears the ended state and plays again, from the start unless a
// replay strategy is installed.
func (p *Player) Replay() error {
	if p.destroying {
		return ErrDestroyed
	}

	p.root.RemoveClass(ClassEnded)
	p.state.Ended = false

	if fn, ok := p.replay.Get(); ok {
		fn()
		return nil
	}

	p.surface.SeekTo(0)
	p.surface.Play()

	return nil
}

// Destroy tears the player down. If media is playing it is paused first,
// and teardown completes once the surface reports the pause. The destroy
// event is emitted before the container is detached. Destroying twice
// returns ErrDestroyed.
func (p *Player) Destroy() error {
	if p.destroying {
		return ErrDestroyed
	}
	p.destroying = true

	if !p.surface.IsPaused() {
		p.surface.Pause()
		p.bus.Once(event.Pause, func(event.Event) { p.finish() })
		return nil
	}

	p.finish()
	return nil
}

func (p *Player) finish() {
	p.activity.Stop()
	p.buffering.Stop()
	if p.unnotify != nil {
		p.unnotify()
	}

	p.bus.Emit(event.Destroy, nil)

	for name, id := range p.handlers {
		p.bus.Off(name, id)
	}
	p.root.Detach()
	p.destroyed = true

	p.log.Debug("player destroyed")
}

// Destroyed reports whether teardown has completed.
func (p *Player) Destroyed() bool {
	return p.destroyed
}

// Play resumes playback.
func (p *Player) Play() { p.surface.Play() }

// Pause pauses playback.
func (p *Player) Pause() { p.surface.Pause() }

// Stop stops playback on the surface.
func (p *Player) Stop() { p.surface.Stop() }

// SeekTo seeks the surface.
func (p *Player) SeekTo(pos time.Duration) { p.surface.SeekTo(pos) }

// ID returns the instance ID.
func (p *Player) ID() uuid.UUID { return p.id }

// Config returns a copy of the configuration.
func (p *Player) Config() Config { return p.cfg.clone() }

// Bus returns the event bus.
func (p *Player) Bus() *event.Bus { return p.bus }

// Surface returns the media surface.
func (p *Player) Surface() omniplayer.MediaSurface { return p.surface }

// Scheduler returns the scheduler the player runs on.
func (p *Player) Scheduler() loop.Scheduler { return p.sched }

// Device returns the device class plugins were filtered by.
func (p *Player) Device() device.Class { return p.device }

// Root returns the container node.
func (p *Player) Root() *view.Node { return p.root }

// Controls returns the controls node.
func (p *Player) Controls() *view.Node { return p.controls }

// Media returns the media node.
func (p *Player) Media() *view.Node { return p.media }

// Plugins returns the names of the installers applied at construction.
func (p *Player) Plugins() []string { return append([]string(nil), p.plugins...) }

// State returns the current UI state.
func (p *Player) State() State { return p.state }

// History returns the most recent surface events, oldest first.
func (p *Player) History() []event.Name { return append([]event.Name(nil), p.history...) }

// String implements the fmt.Stringer interface.
func (p *Player) String() string {
	return fmt.Sprintf("player %s on #%s", p.id, p.root.ID)
}
