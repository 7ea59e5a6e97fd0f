package gcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/gcast/internal/castv2"
	"github.com/ericyan/omniplayer/log"
)

// ErrInvalidMedia is reported for media URLs a receiver cannot fetch.
var ErrInvalidMedia = errors.New("invalid media")

// LaunchTimeout bounds how long to wait for the receiver app.
var LaunchTimeout = 10 * time.Second

// Player states and idle reasons reported in MEDIA_STATUS.
//
// https://developers.google.com/cast/docs/reference/messages#MediaStatus
const (
	StateIdle      = "IDLE"
	StatePlaying   = "PLAYING"
	StatePaused    = "PAUSED"
	StateBuffering = "BUFFERING"

	IdleFinished    = "FINISHED"
	IdleCancelled   = "CANCELLED"
	IdleInterrupted = "INTERRUPTED"
	IdleError       = "ERROR"
)

// MediaInformation represents a media stream.
//
// Ref: https://developers.google.com/cast/docs/reference/messages#MediaInformation
type MediaInformation struct {
	ContentID   string        `json:"contentId"`
	ContentType string        `json:"contentType"`
	StreamType  string        `json:"streamType"`
	Metadata    MediaMetadata `json:"metadata,omitempty"`
	Duration    float64       `json:"duration,omitempty"`
}

// MediaSession represents the current status of a single session.
type MediaSession struct {
	MediaSessionID         int               `json:"mediaSessionId"`
	Media                  *MediaInformation `json:"media,omitempty"`
	PlaybackRate           float32           `json:"playbackRate"`
	PlayerState            string            `json:"playerState"`
	IdleReason             string            `json:"idleReason,omitempty"`
	CurrentTime            float64           `json:"currentTime"`
	SupportedMediaCommands int               `json:"supportedMediaCommands"`
}

// MediaStatus represents the current status of the media artifact with
// respect to the session.
type MediaStatus struct {
	castv2.Header
	Status []*MediaSession `json:"status"`
}

// A Sender is a sender app instance that controls media playback on the
// receiver, exposed as a media surface. Its ID, which should be unique,
// is used to identify itself when communicating with the receiver.
//
// Commands are sent in order from a worker goroutine so callers never
// block on the network.
type Sender struct {
	event.Notifier

	ID string
	r  *Receiver

	cmds     chan func()
	msgs     chan *castv2.Msg
	subs     map[string]int
	done     chan struct{}
	stopOnce sync.Once

	mu         sync.Mutex
	pending    []omniplayer.Source
	current    omniplayer.Source
	session    *MediaSession
	lastUpdate time.Time
	ended      bool
	seeking    bool
}

var _ omniplayer.MediaSurface = (*Sender)(nil)

// NewSender returns a Sender with given ID driving a connected receiver.
func NewSender(id string, r *Receiver) (*Sender, error) {
	s := newSender(id)
	s.r = r

	for _, t := range []string{castv2.TypeMediaStatus, castv2.TypeLoadFailed, castv2.TypeLoadCancelled, castv2.TypeInvalidRequest} {
		id, err := r.Subscribe(t, s.msgs)
		if err != nil {
			s.unsubscribe()
			return nil, err
		}
		s.subs[t] = id
	}

	go s.work()
	go s.watch()

	return s, nil
}

func newSender(id string) *Sender {
	return &Sender{
		ID:   id,
		cmds: make(chan func(), 16),
		msgs: make(chan *castv2.Msg, 16),
		subs: make(map[string]int),
		done: make(chan struct{}),
	}
}

func (s *Sender) work() {
	for {
		select {
		case cmd := <-s.cmds:
			cmd()
		case <-s.done:
			return
		}
	}
}

func (s *Sender) watch() {
	for {
		select {
		case msg := <-s.msgs:
			s.handleMsg(msg)
		case <-s.r.Done():
			return
		case <-s.done:
			return
		}
	}
}

func (s *Sender) enqueue(cmd func()) {
	select {
	case s.cmds <- cmd:
	case <-s.done:
	}
}

func (s *Sender) fail(code string, err error) {
	log.WithField("sender", s.ID).WithError(err).Warn("gcast: command failed")
	s.Send(event.Error, omniplayer.NewMediaError(code, err))
}

func (s *Sender) handleMsg(msg *castv2.Msg) {
	h, err := msg.Header()
	if err != nil {
		return
	}

	switch h.Type {
	case castv2.TypeMediaStatus:
		ms := new(MediaStatus)
		if err := json.Unmarshal([]byte(msg.Payload), ms); err != nil {
			log.WithError(err).Debug("gcast: bad media status")
			return
		}
		for _, sess := range ms.Status {
			s.updateSession(sess)
		}
	case castv2.TypeLoadFailed:
		s.Send(event.Error, omniplayer.NewMediaError(omniplayer.ErrCodeSourceError, errors.New("receiver failed to load media")))
	case castv2.TypeInvalidRequest:
		var resp struct {
			Reason string `json:"reason"`
		}
		json.Unmarshal([]byte(msg.Payload), &resp)
		s.Send(event.Error, omniplayer.NewMediaError(omniplayer.ErrCodePlaybackFailed, fmt.Errorf("invalid request: %s", resp.Reason)))
	case castv2.TypeLoadCancelled:
		log.WithField("sender", s.ID).Debug("gcast: load cancelled")
	}
}

func (s *Sender) updateSession(next *MediaSession) {
	s.mu.Lock()
	prev := s.session
	// The media element will only be returned if it has changed.
	if next.Media == nil && prev != nil && prev.MediaSessionID == next.MediaSessionID {
		next.Media = prev.Media
	}
	events := mediaEvents(prev, next)
	if s.seeking && next.PlayerState != StateBuffering {
		s.seeking = false
		events = append([]event.Name{event.Seeked}, events...)
	}

	switch next.PlayerState {
	case StatePlaying, StateBuffering:
		s.ended = false
	case StateIdle:
		s.ended = next.IdleReason == IdleFinished
	}
	s.session = next
	s.lastUpdate = time.Now()
	s.mu.Unlock()

	for _, name := range events {
		if name == event.Error {
			s.Send(name, omniplayer.NewMediaError(omniplayer.ErrCodeDecoderError, errors.New("receiver stopped with an error")))
			continue
		}
		s.Send(name, nil)
	}
}

func isActive(state string) bool {
	return state == StatePlaying || state == StateBuffering
}

// mediaEvents returns the lifecycle events a media session update
// corresponds to, in the order a media element would fire them.
func mediaEvents(prev, next *MediaSession) []event.Name {
	var events []event.Name

	prevState := StateIdle
	if prev != nil && prev.MediaSessionID == next.MediaSessionID {
		prevState = prev.PlayerState
	} else if next.Media != nil {
		events = append(events, event.LoadedData)
	}

	if prevState == next.PlayerState {
		return events
	}

	switch next.PlayerState {
	case StatePlaying:
		if prevState != StateBuffering {
			events = append(events, event.Play)
		}
		events = append(events, event.Playing)
	case StateBuffering:
		if prevState != StatePlaying {
			events = append(events, event.Play)
		}
		events = append(events, event.Waiting)
	case StatePaused:
		if isActive(prevState) {
			events = append(events, event.Pause)
		}
	case StateIdle:
		if isActive(prevState) {
			events = append(events, event.Pause)
		}
		switch next.IdleReason {
		case IdleFinished:
			events = append(events, event.Ended)
		case IdleError:
			events = append(events, event.Error)
		}
	}

	return events
}

// mediaTypes covers extensions the system MIME table may lack.
var mediaTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".m3u8": "application/x-mpegURL",
	".mpd":  "application/dash+xml",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

// contentType guesses the MIME type of a source.
func contentType(src omniplayer.Source, u *url.URL) string {
	if src.Type != "" {
		return src.Type
	}

	ext := strings.ToLower(path.Ext(u.EscapedPath()))
	if t, ok := mediaTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}

	return "application/octet-stream"
}

func newMediaInformation(src omniplayer.Source) (*MediaInformation, error) {
	u, err := url.Parse(src.Src)
	if err != nil || !u.IsAbs() {
		return nil, ErrInvalidMedia
	}

	return &MediaInformation{
		ContentID:   u.String(),
		ContentType: contentType(src, u),
		StreamType:  "BUFFERED",
		Metadata:    NewMediaMetadata(path.Base(u.Path)),
	}, nil
}

// load launches the default media receiver if needed and loads src.
func (s *Sender) load(src omniplayer.Source, autoplay bool) {
	media, err := newMediaInformation(src)
	if err != nil {
		s.fail(omniplayer.ErrCodeSourceError, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), LaunchTimeout)
	defer cancel()
	if _, err := s.r.Launch(ctx, DefaultReceiverAppID); err != nil {
		s.fail(omniplayer.ErrCodePlaybackFailed, err)
		return
	}

	req := &struct {
		castv2.Header
		Media       *MediaInformation `json:"media"`
		Autoplay    bool              `json:"autoplay"`
		CurrentTime float64           `json:"currentTime"`
	}{}
	req.Type = castv2.TypeLoad
	req.Media = media
	req.Autoplay = autoplay

	if err := s.r.Media(s.ID, req); err != nil {
		s.fail(omniplayer.ErrCodePlaybackFailed, err)
	}
}

// control sends a media command for the current session.
func (s *Sender) control(msgType string, extra func(req *controlRequest)) {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()
	if sess == nil {
		s.fail(omniplayer.ErrCodePlaybackFailed, ErrReceiverNotReady)
		return
	}

	req := &controlRequest{MediaSessionID: sess.MediaSessionID}
	req.Type = msgType
	if extra != nil {
		extra(req)
	}

	if err := s.r.Media(s.ID, req); err != nil {
		s.fail(omniplayer.ErrCodePlaybackFailed, err)
	}
}

type controlRequest struct {
	castv2.Header
	MediaSessionID int      `json:"mediaSessionId"`
	CurrentTime    *float64 `json:"currentTime,omitempty"`
}

// SetSource queues url to be loaded by the next Play.
func (s *Sender) SetSource(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
	if url != "" {
		s.pending = []omniplayer.Source{{Src: url}}
	}
}

// AppendSource queues another candidate. Only the first queued source is
// loaded; the default receiver does not fall back between renditions.
func (s *Sender) AppendSource(src omniplayer.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, src)
}

// Play loads queued media, or resumes playback.
func (s *Sender) Play() {
	s.mu.Lock()
	var src omniplayer.Source
	if len(s.pending) > 0 {
		src = s.pending[0]
		s.current = src
		s.pending = nil
	}
	s.mu.Unlock()

	s.enqueue(func() {
		if src.Src != "" {
			s.load(src, true)
			return
		}
		s.control(castv2.TypePlay, nil)
	})
}

// Pause pauses playback of the current content.
func (s *Sender) Pause() {
	s.enqueue(func() { s.control(castv2.TypePause, nil) })
}

// Stop stops the playback and unloads the current content.
func (s *Sender) Stop() {
	s.enqueue(func() { s.control(castv2.TypeStop, nil) })
}

// Reload loads the current media again without starting it.
func (s *Sender) Reload() {
	s.mu.Lock()
	src := s.current
	if src.Src == "" && len(s.pending) > 0 {
		src = s.pending[0]
		s.current = src
		s.pending = nil
	}
	s.mu.Unlock()

	if src.Src == "" {
		return
	}
	s.enqueue(func() { s.load(src, false) })
}

// SeekTo sets the current playback position to pos.
func (s *Sender) SeekTo(pos time.Duration) {
	s.mu.Lock()
	s.seeking = true
	s.mu.Unlock()
	s.Send(event.Seeking, nil)

	secs := pos.Seconds()
	s.enqueue(func() {
		s.control(castv2.TypeSeek, func(req *controlRequest) { req.CurrentTime = &secs })
	})
}

// IsPaused returns true unless the receiver is playing or buffering.
func (s *Sender) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session == nil || !isActive(s.session.PlayerState)
}

// IsEnded returns true if playback finished.
func (s *Sender) IsEnded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

// PlaybackPosition returns the current position of media playback from
// the beginning of media content, extrapolated from the last status
// while playing.
func (s *Sender) PlaybackPosition() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return 0
	}

	pos := s.session.CurrentTime
	if s.session.PlayerState == StatePlaying {
		pos += time.Since(s.lastUpdate).Seconds() * float64(s.session.PlaybackRate)
	}
	if m := s.session.Media; m != nil && m.Duration > 0 && pos > m.Duration {
		pos = m.Duration
	}

	return time.Duration(pos * float64(time.Second))
}

// MediaDuration returns the duration of current loaded media.
func (s *Sender) MediaDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.Media == nil {
		return 0
	}

	return time.Duration(s.session.Media.Duration * float64(time.Second))
}

// VolumeLevel returns the receiver volume from 0 to 1.
func (s *Sender) VolumeLevel() float64 {
	if s.r == nil {
		return 0
	}
	if vol := s.r.Volume(); vol != nil {
		return vol.Level
	}

	return 0
}

// SetVolumeLevel sets the receiver volume from 0 to 1.
func (s *Sender) SetVolumeLevel(level float64) {
	s.enqueue(func() {
		if err := s.r.SetVolume(level); err != nil {
			log.WithField("sender", s.ID).WithError(err).Warn("gcast: set volume failed")
		}
	})
}

// unsubscribe drops the receiver subscriptions; nothing drains msgs
// once the sender stops, so leaving them would block the channel.
func (s *Sender) unsubscribe() {
	for t, id := range s.subs {
		if err := s.r.Unsubscribe(t, id); err != nil {
			log.WithField("sender", s.ID).WithError(err).Debug("gcast: unsubscribe failed")
		}
		delete(s.subs, t)
	}
}

// Close stops the sender. The receiver connection stays open.
func (s *Sender) Close() error {
	s.stopOnce.Do(func() {
		if s.r != nil {
			s.unsubscribe()
		}
		close(s.done)
	})

	return nil
}
