package player

import (
	"github.com/ericyan/omniplayer/event"
)

type handler struct {
	name event.Name
	fn   event.Handler
}

// handlerTable returns the core handlers, in the order they subscribe.
func (p *Player) handlerTable() []handler {
	return []handler{
		{event.Focus, p.onFocus},
		{event.Blur, p.onBlur},
		{event.Play, p.onPlay},
		{event.Pause, p.onPause},
		{event.Playing, p.onPlaying},
		{event.Waiting, p.onWaiting},
		{event.Seeking, p.onSeeking},
		{event.Seeked, p.onSeeked},
		{event.Ended, p.onEnded},
		{event.Error, p.onError},
	}
}

func (p *Player) setActive(active bool) {
	p.state.Active = active
	if active {
		p.root.RemoveClass(ClassInactive)
	} else {
		p.root.AddClass(ClassInactive)
	}
}

func (p *Player) setBuffering(buffering bool) {
	p.state.Buffering = buffering
	if buffering {
		p.root.AddClass(ClassLoading)
	} else {
		p.root.RemoveClass(ClassLoading)
	}
}

func (p *Player) onFocus(event.Event) {
	p.activity.Focus()
}

func (p *Player) onBlur(event.Event) {
	p.activity.Blur()
}

func (p *Player) onPlay(event.Event) {
	p.root.AddClass(ClassPlaying)
	p.root.RemoveClass(ClassPause)
	p.state.Playing = true
	p.state.Paused = false

	p.activity.Arm()
}

// onPause keeps the controls visible while paused.
func (p *Player) onPause(event.Event) {
	p.root.AddClass(ClassPause)
	p.state.Paused = true

	p.activity.Stop()
	p.bus.Emit(event.Focus, nil)
}

func (p *Player) onEnded(event.Event) {
	p.root.AddClass(ClassEnded)
	p.root.RemoveClass(ClassPlaying)
	p.state.Ended = true
	p.state.Playing = false
}

// onSeeking is deliberately inert: seeking marks nothing. The event is
// still forwarded and recorded in History.
func (p *Player) onSeeking(event.Event) {}

func (p *Player) onSeeked(event.Event) {
	p.buffering.Resolve()
}

func (p *Player) onWaiting(event.Event) {
	p.buffering.Waiting()
}

func (p *Player) onPlaying(event.Event) {
	p.buffering.Resolve()

	p.root.RemoveClass(ClassLoading + " " + ClassNoStart + " " + ClassPause + " " + ClassEnded + " " + ClassError + " " + ClassReplay)
	p.root.AddClass(ClassPlaying)
	p.state = State{
		Active:  p.state.Active,
		Playing: true,
		Started: true,
	}
}

func (p *Player) onError(event.Event) {
	p.root.AddClass(ClassError)
	p.state.Errored = true
}
