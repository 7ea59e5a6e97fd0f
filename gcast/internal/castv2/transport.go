package castv2

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ericyan/omniplayer/log"
)

// HeartbeatInterval is how often established virtual connections are
// pinged.
const HeartbeatInterval = 5 * time.Second

// ErrClosed is returned when using a closed Channel.
var ErrClosed = errors.New("castv2: channel closed")

// A vconn is a virtual connection represented by a pair of source and
// destination ID.
type vconn struct {
	LocalID  string
	RemoteID string
}

func (vc vconn) newMsg(namespace, msgType string) *Msg {
	return &Msg{vc.LocalID, vc.RemoteID, namespace, `{"type":"` + msgType + `"}`}
}

// Channel represents a cast channel to the receiver device.
//
// It also manages the virtual connections. If a message is sent to a
// new source and destination ID pair, a virtual connection will be
// automatically established and kept alive.
type Channel struct {
	conn io.ReadWriteCloser
	wmu  sync.Mutex

	mu        sync.Mutex
	vconns    map[vconn]struct{}
	pending   map[uint64]chan<- *Msg
	subs      map[string]map[int]chan<- *Msg
	lastSubID int

	lastReqID uint64

	heartbeat *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// Dial connects to the receiver device at addr over TLS. Receivers use
// self-signed certificates, so they are not verified.
func Dial(addr *net.TCPAddr) (*Channel, error) {
	conn, err := tls.Dial("tcp", addr.String(), &tls.Config{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return nil, err
	}

	return NewChannel(conn), nil
}

// NewChannel runs the protocol over an established connection.
func NewChannel(conn io.ReadWriteCloser) *Channel {
	c := &Channel{
		conn:      conn,
		vconns:    make(map[vconn]struct{}),
		pending:   make(map[uint64]chan<- *Msg),
		subs:      make(map[string]map[int]chan<- *Msg),
		heartbeat: time.NewTicker(HeartbeatInterval),
		done:      make(chan struct{}),
	}

	go c.listen()
	go c.keepalive()

	return c
}

func (c *Channel) writeMsg(msg *Msg) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	return WriteMsg(c.conn, msg)
}

func (c *Channel) listen() {
	defer c.conn.Close()
	defer c.shutdown()

	for {
		msg, err := ReadMsg(c.conn)
		if err != nil {
			if c.IsClosed() {
				return
			}
			if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
				continue
			}
			if !errors.Is(err, io.EOF) {
				log.WithError(err).Warn("castv2: read failed")
			}
			return
		}

		c.dispatch(msg)
	}
}

func (c *Channel) dispatch(msg *Msg) {
	h, err := msg.Header()
	if err != nil {
		log.WithField("payload", msg.Payload).Debug("castv2: unexpected payload")
		return
	}

	switch msg.Namespace {
	case NamespaceHeartbeat:
		if h.Type == TypePing {
			vc := vconn{msg.DestinationID, msg.SourceID}
			if err := c.writeMsg(vc.newMsg(NamespaceHeartbeat, TypePong)); err != nil {
				log.WithError(err).Debug("castv2: pong failed")
			}
		}
		return
	case NamespaceConnection:
		if h.Type == TypeClose {
			c.mu.Lock()
			delete(c.vconns, vconn{msg.DestinationID, msg.SourceID})
			c.mu.Unlock()
		}
		return
	}

	c.mu.Lock()
	respCh, ok := c.pending[h.RequestID]
	if ok {
		delete(c.pending, h.RequestID)
	}
	subs := make([]chan<- *Msg, 0, len(c.subs[h.Type]))
	for _, sub := range c.subs[h.Type] {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	if ok && h.RequestID != 0 {
		respCh <- msg
		return
	}

	if len(subs) == 0 {
		log.WithField("msg", msg.String()).Debug("castv2: unhandled message")
		return
	}
	for _, sub := range subs {
		select {
		case sub <- msg:
		case <-c.done:
			return
		}
	}
}

func (c *Channel) keepalive() {
	for {
		select {
		case <-c.heartbeat.C:
			c.mu.Lock()
			vcs := make([]vconn, 0, len(c.vconns))
			for vc := range c.vconns {
				vcs = append(vcs, vc)
			}
			c.mu.Unlock()

			for _, vc := range vcs {
				c.writeMsg(vc.newMsg(NamespaceHeartbeat, TypePing))
			}
		case <-c.done:
			return
		}
	}
}

func (c *Channel) shutdown() {
	c.closeOnce.Do(func() {
		c.heartbeat.Stop()
		close(c.done)
	})
}

// Done is closed once the channel stops receiving.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

// IsClosed reports whether the channel has been closed.
func (c *Channel) IsClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Close terminates all established virtual connections and then closes
// the underlying connection.
func (c *Channel) Close() error {
	if c.IsClosed() {
		return nil
	}

	c.mu.Lock()
	vcs := make([]vconn, 0, len(c.vconns))
	for vc := range c.vconns {
		vcs = append(vcs, vc)
		delete(c.vconns, vc)
	}
	c.mu.Unlock()

	for _, vc := range vcs {
		c.writeMsg(vc.newMsg(NamespaceConnection, TypeClose))
	}

	c.shutdown()
	return c.conn.Close()
}

func (c *Channel) connect(vc vconn) error {
	c.mu.Lock()
	_, ok := c.vconns[vc]
	c.vconns[vc] = struct{}{}
	c.mu.Unlock()

	if ok {
		return nil
	}

	return c.writeMsg(vc.newMsg(NamespaceConnection, TypeConnect))
}

// Request sends a request. If respCh is not nil, the reply carrying the
// same request ID is delivered to it; it should be buffered.
func (c *Channel) Request(srcID, destID, namespace string, req Request, respCh chan<- *Msg) error {
	if c.IsClosed() {
		return ErrClosed
	}

	vc := vconn{srcID, destID}
	if err := c.connect(vc); err != nil {
		return err
	}

	reqID := atomic.AddUint64(&c.lastReqID, 1)
	req.SetRequestID(reqID)

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	if respCh != nil {
		c.mu.Lock()
		c.pending[reqID] = respCh
		c.mu.Unlock()
	}

	if err := c.writeMsg(&Msg{srcID, destID, namespace, string(payload)}); err != nil {
		c.mu.Lock()
		delete(c.pending, reqID)
		c.mu.Unlock()
		return err
	}

	return nil
}

// Subscribe registers subCh for messages of msgType that are not replies
// to a pending request. It returns an ID for Unsubscribe.
func (c *Channel) Subscribe(msgType string, subCh chan<- *Msg) (int, error) {
	if subCh == nil {
		return 0, errors.New("castv2: nil subscription channel")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subs[msgType] == nil {
		c.subs[msgType] = make(map[int]chan<- *Msg)
	}
	c.lastSubID++
	c.subs[msgType][c.lastSubID] = subCh

	return c.lastSubID, nil
}

// Unsubscribe unregisters the subscription.
func (c *Channel) Unsubscribe(msgType string, subID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.subs[msgType][subID]; !ok {
		return errors.New("castv2: subscription not found")
	}
	delete(c.subs[msgType], subID)

	return nil
}
