// Package castv2 provides a low-level implementation of Google Cast V2
// protocol.
package castv2

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gogo/protobuf/proto"

	"github.com/ericyan/omniplayer/gcast/internal/castv2/cast_channel"
)

// Sender and receiver IDs to use for platform messages.
const (
	PlatformSenderID   = "sender-0"
	PlatformReceiverID = "receiver-0"
)

// Broadcast is the destination ID of unsolicited status messages.
const Broadcast = "*"

// Reserved message namespaces for internal messages.
const (
	NamespaceConnection = "urn:x-cast:com.google.cast.tp.connection"
	NamespaceHeartbeat  = "urn:x-cast:com.google.cast.tp.heartbeat"
	NamespaceReceiver   = "urn:x-cast:com.google.cast.receiver"
	NamespaceMedia      = "urn:x-cast:com.google.cast.media"
)

// Cast application protocol message types.
const (
	TypeConnect        = "CONNECT"
	TypeClose          = "CLOSE"
	TypePing           = "PING"
	TypePong           = "PONG"
	TypeGetStatus      = "GET_STATUS"
	TypeReceiverStatus = "RECEIVER_STATUS"
	TypeMediaStatus    = "MEDIA_STATUS"
	TypeLaunch         = "LAUNCH"
	TypeLaunchError    = "LAUNCH_ERROR"
	TypeLoad           = "LOAD"
	TypeLoadFailed     = "LOAD_FAILED"
	TypeLoadCancelled  = "LOAD_CANCELLED"
	TypeInvalidRequest = "INVALID_REQUEST"
	TypePlay           = "PLAY"
	TypePause          = "PAUSE"
	TypeStop           = "STOP"
	TypeSeek           = "SEEK"
	TypeSetVolume      = "SET_VOLUME"
)

// maxMsgSize bounds the length prefix accepted from the wire.
const maxMsgSize = 64 << 10

// ErrMsgTooLarge is returned for frames longer than the protocol allows.
var ErrMsgTooLarge = errors.New("castv2: message too large")

// Msg is a Cast V2 protocol data unit with textual payload.
type Msg struct {
	SourceID      string
	DestinationID string
	Namespace     string
	Payload       string
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (m *Msg) UnmarshalBinary(data []byte) error {
	cm := new(cast_channel.CastMessage)
	if err := proto.Unmarshal(data, cm); err != nil {
		return err
	}

	if cm.GetPayloadType() != cast_channel.CastMessage_STRING {
		return errors.New("castv2: unsupported payload type")
	}

	m.SourceID = cm.GetSourceId()
	m.DestinationID = cm.GetDestinationId()
	m.Namespace = cm.GetNamespace()
	m.Payload = cm.GetPayloadUtf8()

	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (m *Msg) MarshalBinary() ([]byte, error) {
	return proto.Marshal(&cast_channel.CastMessage{
		ProtocolVersion: cast_channel.CastMessage_CASTV2_1_0.Enum(),
		SourceId:        proto.String(m.SourceID),
		DestinationId:   proto.String(m.DestinationID),
		Namespace:       proto.String(m.Namespace),
		PayloadType:     cast_channel.CastMessage_STRING.Enum(),
		PayloadUtf8:     proto.String(m.Payload),
	})
}

// Header decodes the common payload fields.
func (m *Msg) Header() (Header, error) {
	var h Header
	err := json.Unmarshal([]byte(m.Payload), &h)

	return h, err
}

// String implements the fmt.Stringer interface.
func (m *Msg) String() string {
	return fmt.Sprintf("%s -> %s [%s] %s", m.SourceID, m.DestinationID, m.Namespace, m.Payload)
}

// ReadMsg reads one length-prefixed message.
func ReadMsg(r io.Reader) (*Msg, error) {
	// Each message is prefixed with its length as a big-endian uint32.
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	if n > maxMsgSize {
		return nil, ErrMsgTooLarge
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	msg := new(Msg)
	if err := msg.UnmarshalBinary(buf); err != nil {
		return nil, err
	}

	return msg, nil
}

// WriteMsg writes msg with its length prefix in a single write.
func WriteMsg(w io.Writer, msg *Msg) error {
	data, err := msg.MarshalBinary()
	if err != nil {
		return err
	}

	frame := make([]byte, 4+len(data))
	binary.BigEndian.PutUint32(frame, uint32(len(data)))
	copy(frame[4:], data)

	_, err = w.Write(frame)
	return err
}

// Header contains the required fields in most payload types.
type Header struct {
	RequestID uint64 `json:"requestId,omitempty"`
	Type      string `json:"type"`
}

// SetRequestID sets the requestId header.
func (h *Header) SetRequestID(id uint64) {
	h.RequestID = id
}

// Request represents a request payload.
type Request interface {
	SetRequestID(id uint64)
}

// NewRequest returns a new request of given type.
func NewRequest(reqType string) Request {
	return &Header{Type: reqType}
}
