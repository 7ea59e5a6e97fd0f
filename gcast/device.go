package gcast

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/grandcat/zeroconf"
	"github.com/samber/lo"
)

// ErrDeviceNotFound is returned by Find when discovery ends without a
// match.
var ErrDeviceNotFound = errors.New("no cast device found")

// DeviceCapability represents one of the defined device capabilities.
type DeviceCapability uint

// String returns the string representation of the device capability.
func (c DeviceCapability) String() string {
	switch c {
	case None:
		return "none"
	case VideoOut:
		return "video_out"
	case VideoIn:
		return "video_in"
	case AudioOut:
		return "audio_out"
	case AudioIn:
		return "audio_in"
	case DevMode:
		return "dev_mode"
	case MultizoneGroup:
		return "multizone_group"
	default:
		return strconv.Itoa(int(c))
	}
}

// Defined Google Cast device capabilities.
//
// Source: https://github.com/chromium/chromium/blob/master/components/cast_channel/cast_socket.h#L46
const (
	None           DeviceCapability = 0
	VideoOut       DeviceCapability = 1 << 0
	VideoIn        DeviceCapability = 1 << 1
	AudioOut       DeviceCapability = 1 << 2
	AudioIn        DeviceCapability = 1 << 3
	DevMode        DeviceCapability = 1 << 4
	MultizoneGroup DeviceCapability = 1 << 5
)

// DeviceInfo describes a device announced over mDNS.
type DeviceInfo struct {
	UUID  uuid.UUID
	Name  string
	Model string

	IPv4 net.IP
	IPv6 net.IP
	Port int

	capabilities DeviceCapability
}

// TCPAddr returns IPv4 and Port as net.TCPAddr.
func (d *DeviceInfo) TCPAddr() *net.TCPAddr {
	return &net.TCPAddr{IP: d.IPv4, Port: d.Port}
}

var allCapabilities = []DeviceCapability{VideoOut, VideoIn, AudioOut, AudioIn, DevMode, MultizoneGroup}

// Capabilities returns a list of device capabilities.
func (d *DeviceInfo) Capabilities() []DeviceCapability {
	return lo.Filter(allCapabilities, func(c DeviceCapability, _ int) bool {
		return d.capabilities&c != 0
	})
}

// CapableOf returns true if the device has all given capabilities.
func (d *DeviceInfo) CapableOf(capabilities ...DeviceCapability) bool {
	var mask DeviceCapability
	for _, c := range capabilities {
		mask |= c
	}

	return d.capabilities&mask == mask
}

// Discover returns a channel with DeviceInfo found via mDNS. The channel
// is closed when ctx is done.
func Discover(ctx context.Context) (<-chan *DeviceInfo, error) {
	resolv, err := zeroconf.NewResolver()
	if err != nil {
		return nil, err
	}

	mdnsCh := make(chan *zeroconf.ServiceEntry)
	if err := resolv.Browse(ctx, "_googlecast._tcp", "local.", mdnsCh); err != nil {
		return nil, err
	}

	devCh := make(chan *DeviceInfo)
	go func() {
		defer close(devCh)
		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-mdnsCh:
				if !ok {
					return
				}
				if entry == nil {
					continue
				}

				select {
				case devCh <- parseEntry(entry):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return devCh, nil
}

// Find returns the first device discovered whose friendly name is name,
// or the first device at all when name is empty.
func Find(ctx context.Context, name string) (*DeviceInfo, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	devCh, err := Discover(ctx)
	if err != nil {
		return nil, err
	}

	for dev := range devCh {
		if dev.IPv4 == nil {
			continue
		}
		if name == "" || dev.Name == name {
			return dev, nil
		}
	}

	return nil, ErrDeviceNotFound
}

func parseEntry(entry *zeroconf.ServiceEntry) *DeviceInfo {
	dev := new(DeviceInfo)

	if len(entry.AddrIPv4) > 0 {
		dev.IPv4 = entry.AddrIPv4[0]
	}
	if len(entry.AddrIPv6) > 0 {
		dev.IPv6 = entry.AddrIPv6[0]
	}
	dev.Port = entry.Port

	for _, value := range entry.Text {
		kv := strings.SplitN(value, "=", 2)
		if len(kv) != 2 {
			continue
		}

		switch kv[0] {
		case "id":
			dev.UUID, _ = uuid.Parse(kv[1])
		case "fn":
			dev.Name = kv[1]
		case "md":
			dev.Model = kv[1]
		case "ca":
			ca, err := strconv.Atoi(kv[1])
			if err != nil {
				ca = int(None)
			}
			dev.capabilities = DeviceCapability(ca)
		}
	}

	return dev
}
