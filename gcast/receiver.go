package gcast

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ericyan/omniplayer/gcast/internal/castv2"
	"github.com/ericyan/omniplayer/log"
)

// Common receiver app IDs.
const (
	DefaultReceiverAppID = "CC1AD845"
	YouTubeReceiverAppID = "233637DE"
)

// ErrReceiverNotReady is returned when the receiver has no usable
// application or media session.
var ErrReceiverNotReady = errors.New("receiver not ready")

// ReceiverApplication represents an instance of receiver application.
type ReceiverApplication struct {
	AppID               string              `json:"appId"`
	Name                string              `json:"displayName"`
	IconURL             string              `json:"iconUrl"`
	StatusText          string              `json:"statusText"`
	IsIdleScreen        bool                `json:"isIdleScreen"`
	SupportedNamespaces []map[string]string `json:"namespaces"`
	SessionID           string              `json:"sessionId"`
	TransportID         string              `json:"transportId"`
}

// ReceiverVolume represents the volume of the receiver device.
type ReceiverVolume struct {
	ControlType  string  `json:"controlType,omitempty"`
	Level        float64 `json:"level"`
	Muted        bool    `json:"muted"`
	StepInterval float64 `json:"stepInterval,omitempty"`
}

// ReceiverStatus represents the devices status of the receiver.
type ReceiverStatus struct {
	castv2.Header
	Status struct {
		Applications []*ReceiverApplication `json:"applications,omitempty"`
		Volume       *ReceiverVolume        `json:"volume"`
	} `json:"status"`
}

// Receiver represents a connection to a Google Cast device.
type Receiver struct {
	*DeviceInfo

	ch       *castv2.Channel
	statusCh chan *castv2.Msg

	mu  sync.Mutex
	app *ReceiverApplication
	vol *ReceiverVolume
}

// NewReceiver returns a Receiver for the device. Call Connect before
// using it.
func NewReceiver(info *DeviceInfo) *Receiver {
	return &Receiver{DeviceInfo: info}
}

// Connect makes a connection to the receiver and fetches its status.
func (r *Receiver) Connect(ctx context.Context) error {
	if r.IsConnected() {
		return nil
	}

	ch, err := castv2.Dial(r.TCPAddr())
	if err != nil {
		return err
	}

	return r.attach(ctx, ch)
}

func (r *Receiver) attach(ctx context.Context, ch *castv2.Channel) error {
	r.ch = ch
	r.statusCh = make(chan *castv2.Msg, 8)
	if _, err := ch.Subscribe(castv2.TypeReceiverStatus, r.statusCh); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case msg := <-r.statusCh:
				if err := r.updateStatus(msg); err != nil {
					log.WithError(err).Debug("gcast: bad receiver status")
				}
			case <-ch.Done():
				return
			}
		}
	}()

	resp, err := r.request(ctx, castv2.PlatformSenderID, castv2.PlatformReceiverID, castv2.NamespaceReceiver, castv2.NewRequest(castv2.TypeGetStatus))
	if err != nil {
		return err
	}

	return r.updateStatus(resp)
}

func (r *Receiver) updateStatus(msg *castv2.Msg) error {
	rs := new(ReceiverStatus)
	if err := json.Unmarshal([]byte(msg.Payload), rs); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.app = nil
	if apps := rs.Status.Applications; len(apps) > 0 {
		r.app = apps[0]
	}
	if rs.Status.Volume != nil {
		r.vol = rs.Status.Volume
	}

	return nil
}

// request sends req and waits for the reply.
func (r *Receiver) request(ctx context.Context, srcID, destID, namespace string, req castv2.Request) (*castv2.Msg, error) {
	respCh := make(chan *castv2.Msg, 1)
	if err := r.ch.Request(srcID, destID, namespace, req, respCh); err != nil {
		return nil, err
	}

	select {
	case resp := <-respCh:
		return resp, nil
	case <-r.ch.Done():
		return nil, castv2.ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// IsConnected returns true if there is an active connection to the
// receiver device.
func (r *Receiver) IsConnected() bool {
	return r.ch != nil && !r.ch.IsClosed()
}

// Application returns the current running receiver application, if any.
func (r *Receiver) Application() *ReceiverApplication {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.app
}

// Volume returns the receiver volume, if known.
func (r *Receiver) Volume() *ReceiverVolume {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.vol
}

// Launch starts the receiver application appID, unless it is already
// running, and returns it.
func (r *Receiver) Launch(ctx context.Context, appID string) (*ReceiverApplication, error) {
	if app := r.Application(); app != nil && app.AppID == appID {
		return app, nil
	}

	req := &struct {
		castv2.Header
		AppID string `json:"appId"`
	}{}
	req.Type = castv2.TypeLaunch
	req.AppID = appID

	resp, err := r.request(ctx, castv2.PlatformSenderID, castv2.PlatformReceiverID, castv2.NamespaceReceiver, req)
	if err != nil {
		return nil, err
	}
	if h, _ := resp.Header(); h.Type != castv2.TypeReceiverStatus {
		return nil, ErrReceiverNotReady
	}
	if err := r.updateStatus(resp); err != nil {
		return nil, err
	}

	app := r.Application()
	if app == nil || app.AppID != appID {
		return nil, ErrReceiverNotReady
	}

	return app, nil
}

// SetVolume sets the receiver volume level from 0 to 1.
func (r *Receiver) SetVolume(level float64) error {
	req := &struct {
		castv2.Header
		Volume struct {
			Level float64 `json:"level"`
		} `json:"volume"`
	}{}
	req.Type = castv2.TypeSetVolume
	req.Volume.Level = level

	return r.ch.Request(castv2.PlatformSenderID, castv2.PlatformReceiverID, castv2.NamespaceReceiver, req, nil)
}

// Subscribe forwards messages of msgType to ch.
func (r *Receiver) Subscribe(msgType string, ch chan<- *castv2.Msg) (int, error) {
	if r.ch == nil {
		return 0, ErrReceiverNotReady
	}

	return r.ch.Subscribe(msgType, ch)
}

// Unsubscribe stops forwarding for a subscription made with Subscribe.
func (r *Receiver) Unsubscribe(msgType string, id int) error {
	if r.ch == nil {
		return ErrReceiverNotReady
	}

	return r.ch.Unsubscribe(msgType, id)
}

// Done is closed when the connection is lost.
func (r *Receiver) Done() <-chan struct{} {
	return r.ch.Done()
}

// Media sends a media namespace request on behalf of senderID to the
// running application. Replies arrive as subscribed messages.
func (r *Receiver) Media(senderID string, req castv2.Request) error {
	app := r.Application()
	if app == nil || app.IsIdleScreen {
		return ErrReceiverNotReady
	}

	return r.ch.Request(senderID, app.TransportID, castv2.NamespaceMedia, req, nil)
}

// Close closes the connection to the receiver.
func (r *Receiver) Close() error {
	if !r.IsConnected() {
		return nil
	}

	return r.ch.Close()
}
