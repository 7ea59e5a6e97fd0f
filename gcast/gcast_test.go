package gcast

import (
	"context"
	"net"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/gcast/internal/castv2"
)

func TestParseEntry(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		AddrIPv4: []net.IP{net.ParseIP("192.168.1.20")},
		Port:     8009,
		Text: []string{
			"id=4a0e5b6c2f3d4e5f8a9b0c1d2e3f4a5b",
			"fn=Living Room TV",
			"md=Chromecast",
			"ca=5",
			"garbage",
		},
	}

	dev := parseEntry(entry)
	if dev.Name != "Living Room TV" || dev.Model != "Chromecast" {
		t.Errorf("parseEntry: got name %q model %q", dev.Name, dev.Model)
	}
	if got := dev.TCPAddr().String(); got != "192.168.1.20:8009" {
		t.Errorf("TCPAddr: got %s", got)
	}
	if got, want := dev.Capabilities(), []DeviceCapability{VideoOut, AudioOut}; !reflect.DeepEqual(got, want) {
		t.Errorf("Capabilities: got %v; want %v", got, want)
	}
	if !dev.CapableOf(VideoOut, AudioOut) || dev.CapableOf(VideoIn) {
		t.Errorf("CapableOf: wrong answer for ca=5")
	}
	if dev.UUID.String() != "4a0e5b6c-2f3d-4e5f-8a9b-0c1d2e3f4a5b" {
		t.Errorf("UUID: got %s", dev.UUID)
	}
}

func TestDeviceCapabilityString(t *testing.T) {
	cases := map[DeviceCapability]string{
		None:           "none",
		VideoOut:       "video_out",
		MultizoneGroup: "multizone_group",
		1 << 9:         "512",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("String: got %s; want %s", got, want)
		}
	}
}

func session(id int, state, reason string) *MediaSession {
	return &MediaSession{MediaSessionID: id, PlayerState: state, IdleReason: reason, Media: &MediaInformation{ContentID: "x"}}
}

func TestMediaEvents(t *testing.T) {
	cases := []struct {
		name       string
		prev, next *MediaSession
		want       []event.Name
	}{
		{"new session buffering", nil, session(1, StateBuffering, ""), []event.Name{event.LoadedData, event.Play, event.Waiting}},
		{"buffered", session(1, StateBuffering, ""), session(1, StatePlaying, ""), []event.Name{event.Playing}},
		{"resume", session(1, StatePaused, ""), session(1, StatePlaying, ""), []event.Name{event.Play, event.Playing}},
		{"stall", session(1, StatePlaying, ""), session(1, StateBuffering, ""), []event.Name{event.Waiting}},
		{"pause", session(1, StatePlaying, ""), session(1, StatePaused, ""), []event.Name{event.Pause}},
		{"finished", session(1, StatePlaying, ""), session(1, StateIdle, IdleFinished), []event.Name{event.Pause, event.Ended}},
		{"failed", session(1, StateBuffering, ""), session(1, StateIdle, IdleError), []event.Name{event.Pause, event.Error}},
		{"loaded paused", nil, session(2, StatePaused, ""), []event.Name{event.LoadedData}},
		{"unchanged", session(1, StatePlaying, ""), session(1, StatePlaying, ""), nil},
		{"replaced", session(1, StatePlaying, ""), session(2, StatePlaying, ""), []event.Name{event.LoadedData, event.Play, event.Playing}},
	}

	for _, c := range cases {
		if got := mediaEvents(c.prev, c.next); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: got %v; want %v", c.name, got, c.want)
		}
	}
}

func recorder(s *Sender) *[]event.Event {
	events := new([]event.Event)
	s.Notify(func(ev event.Event) { *events = append(*events, ev) })
	return events
}

func names(events []event.Event) []event.Name {
	out := make([]event.Name, len(events))
	for i, ev := range events {
		out[i] = ev.Name
	}
	return out
}

func mediaStatus(payload string) *castv2.Msg {
	return &castv2.Msg{SourceID: "web-1", DestinationID: castv2.Broadcast, Namespace: castv2.NamespaceMedia, Payload: payload}
}

func TestSenderStatus(t *testing.T) {
	s := newSender("sender-test")
	events := recorder(s)

	s.handleMsg(mediaStatus(`{"type":"MEDIA_STATUS","status":[{"mediaSessionId":1,"playerState":"PLAYING","currentTime":12.5,"playbackRate":1,"media":{"contentId":"http://example.com/a.mp4","duration":60}}]}`))
	if s.IsPaused() {
		t.Errorf("IsPaused: got true while playing")
	}
	if got := s.MediaDuration(); got != time.Minute {
		t.Errorf("MediaDuration: got %s; want 1m0s", got)
	}
	if got := s.PlaybackPosition(); got < 12500*time.Millisecond {
		t.Errorf("PlaybackPosition: got %s; want at least 12.5s", got)
	}

	// Later updates omit unchanged media.
	s.handleMsg(mediaStatus(`{"type":"MEDIA_STATUS","status":[{"mediaSessionId":1,"playerState":"IDLE","idleReason":"FINISHED","currentTime":60}]}`))
	if !s.IsEnded() || !s.IsPaused() {
		t.Errorf("state after FINISHED: ended %v paused %v", s.IsEnded(), s.IsPaused())
	}
	if got := s.MediaDuration(); got != time.Minute {
		t.Errorf("MediaDuration after update: got %s; want 1m0s", got)
	}

	want := []event.Name{event.LoadedData, event.Play, event.Playing, event.Pause, event.Ended}
	if got := names(*events); !reflect.DeepEqual(got, want) {
		t.Errorf("events: got %v; want %v", got, want)
	}
}

func TestSenderErrors(t *testing.T) {
	s := newSender("sender-test")
	events := recorder(s)

	s.handleMsg(mediaStatus(`{"type":"LOAD_FAILED","requestId":3}`))
	s.handleMsg(mediaStatus(`{"type":"INVALID_REQUEST","requestId":4,"reason":"INVALID_MEDIA_SESSION_ID"}`))

	if len(*events) != 2 {
		t.Fatalf("events: got %d; want 2", len(*events))
	}
	for i, code := range []string{omniplayer.ErrCodeSourceError, omniplayer.ErrCodePlaybackFailed} {
		ev := (*events)[i]
		err, ok := ev.Payload.(*omniplayer.Error)
		if ev.Name != event.Error || !ok || err.Kind != omniplayer.KindMedia || err.Subject != code {
			t.Errorf("event %d: got %s %v", i, ev.Name, ev.Payload)
		}
	}
	if err := (*events)[1].Payload.(error); !strings.Contains(err.Error(), "INVALID_MEDIA_SESSION_ID") {
		t.Errorf("invalid request error: got %s", err)
	}
}

func TestSenderSeek(t *testing.T) {
	s := newSender("sender-test")
	events := recorder(s)

	s.handleMsg(mediaStatus(`{"type":"MEDIA_STATUS","status":[{"mediaSessionId":1,"playerState":"PLAYING","media":{"contentId":"x"}}]}`))
	s.mu.Lock()
	s.seeking = true
	s.mu.Unlock()
	s.handleMsg(mediaStatus(`{"type":"MEDIA_STATUS","status":[{"mediaSessionId":1,"playerState":"BUFFERING"}]}`))
	s.handleMsg(mediaStatus(`{"type":"MEDIA_STATUS","status":[{"mediaSessionId":1,"playerState":"PLAYING"}]}`))

	want := []event.Name{event.LoadedData, event.Play, event.Playing, event.Waiting, event.Seeked, event.Playing}
	if got := names(*events); !reflect.DeepEqual(got, want) {
		t.Errorf("events: got %v; want %v", got, want)
	}
}

func TestSenderSources(t *testing.T) {
	s := newSender("sender-test")

	s.SetSource("http://example.com/a.mp4")
	s.AppendSource(omniplayer.Source{Src: "http://example.com/a.webm", Type: "video/webm"})
	if len(s.pending) != 2 {
		t.Errorf("pending: got %d; want 2", len(s.pending))
	}

	s.SetSource("")
	if s.pending != nil {
		t.Errorf("pending after clearing: got %v", s.pending)
	}
}

func TestNewMediaInformation(t *testing.T) {
	m, err := newMediaInformation(omniplayer.Source{Src: "http://example.com/videos/clip.mp4"})
	if err != nil {
		t.Fatal(err)
	}
	if m.ContentType != "video/mp4" {
		t.Errorf("ContentType: got %s; want video/mp4", m.ContentType)
	}
	if m.Metadata.Title() != "clip.mp4" {
		t.Errorf("Title: got %s", m.Metadata.Title())
	}

	m, _ = newMediaInformation(omniplayer.Source{Src: "http://example.com/live", Type: "application/x-mpegURL"})
	if m.ContentType != "application/x-mpegURL" {
		t.Errorf("ContentType: got %s", m.ContentType)
	}

	if _, err := newMediaInformation(omniplayer.Source{Src: "clip.mp4"}); err != ErrInvalidMedia {
		t.Errorf("relative URL: got %v; want %v", err, ErrInvalidMedia)
	}
}

func TestMediaMetadata(t *testing.T) {
	m := MediaMetadata{
		"title":    "Big Buck Bunny",
		"subtitle": "Blender Foundation",
		"images":   []interface{}{map[string]interface{}{"url": "http://example.com/poster.jpg"}},
	}
	if m.Title() != "Big Buck Bunny" || m.Subtitle() != "Blender Foundation" {
		t.Errorf("Title/Subtitle: got %q %q", m.Title(), m.Subtitle())
	}
	if u := m.ImageURL(); u == nil || u.Path != "/poster.jpg" {
		t.Errorf("ImageURL: got %v", u)
	}
	if u := (MediaMetadata{}).ImageURL(); u != nil {
		t.Errorf("ImageURL of empty metadata: got %v", u)
	}
}

// fakeDevice answers receiver namespace requests like a Chromecast with
// the default media receiver available.
func fakeDevice(t *testing.T, conn net.Conn) {
	t.Helper()
	go func() {
		for {
			msg, err := castv2.ReadMsg(conn)
			if err != nil {
				return
			}
			h, _ := msg.Header()
			reply := func(payload string) {
				castv2.WriteMsg(conn, &castv2.Msg{
					SourceID: msg.DestinationID, DestinationID: msg.SourceID,
					Namespace: msg.Namespace, Payload: payload,
				})
			}

			id := strconv.FormatUint(h.RequestID, 10)
			switch h.Type {
			case castv2.TypeGetStatus:
				reply(`{"type":"RECEIVER_STATUS","requestId":` + id + `,"status":{"volume":{"level":0.4,"muted":false}}}`)
			case castv2.TypeLaunch:
				reply(`{"type":"RECEIVER_STATUS","requestId":` + id + `,"status":{"applications":[{"appId":"CC1AD845","sessionId":"s1","transportId":"web-1"}],"volume":{"level":0.4}}}`)
			}
		}
	}()
}

func TestReceiver(t *testing.T) {
	local, remote := net.Pipe()
	fakeDevice(t, remote)

	r := NewReceiver(&DeviceInfo{Name: "test"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := r.attach(ctx, castv2.NewChannel(local)); err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if !r.IsConnected() {
		t.Errorf("IsConnected: got false")
	}
	if vol := r.Volume(); vol == nil || vol.Level != 0.4 {
		t.Errorf("Volume: got %+v", vol)
	}
	if r.Application() != nil {
		t.Errorf("Application: got %+v; want none", r.Application())
	}
	if err := r.Media("sender-test", castv2.NewRequest(castv2.TypeGetStatus)); err != ErrReceiverNotReady {
		t.Errorf("Media without app: got %v; want %v", err, ErrReceiverNotReady)
	}

	app, err := r.Launch(ctx, DefaultReceiverAppID)
	if err != nil {
		t.Fatal(err)
	}
	if app.TransportID != "web-1" {
		t.Errorf("TransportID: got %s", app.TransportID)
	}

	s := newSender("sender-test")
	s.r = r
	if got := s.VolumeLevel(); got != 0.4 {
		t.Errorf("VolumeLevel: got %v; want 0.4", got)
	}
}

func TestSenderCloseReleasesReceiver(t *testing.T) {
	local, remote := net.Pipe()
	fakeDevice(t, remote)

	r := NewReceiver(&DeviceInfo{Name: "test"})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.attach(ctx, castv2.NewChannel(local)); err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	s, err := NewSender("sender-test", r)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.subs) != 4 {
		t.Fatalf("subscriptions: got %d; want 4", len(s.subs))
	}
	s.Close()
	if len(s.subs) != 0 {
		t.Errorf("subscriptions after Close: got %d; want 0", len(s.subs))
	}

	// More statuses than the sender buffers; the channel must keep
	// dispatching with nobody reading them.
	go func() {
		for i := 0; i < 40; i++ {
			castv2.WriteMsg(remote, &castv2.Msg{
				SourceID: "web-1", DestinationID: castv2.Broadcast,
				Namespace: castv2.NamespaceMedia, Payload: `{"type":"MEDIA_STATUS","requestId":0,"status":[]}`,
			})
		}
	}()

	if _, err := r.Launch(ctx, DefaultReceiverAppID); err != nil {
		t.Errorf("Launch after Close: %s", err)
	}
}
