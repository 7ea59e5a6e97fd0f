package mpris

import (
	"net/url"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

// Metadata is a mapping from metadata attribute names to values.
//
// https://www.freedesktop.org/wiki/Specifications/mpris-spec/metadata/
type Metadata map[string]dbus.Variant

// TrackID returns mpris:trackid, or the NoTrack path if there is none.
func (m Metadata) TrackID() dbus.ObjectPath {
	if v, ok := m["mpris:trackid"]; ok {
		if p, ok := v.Value().(dbus.ObjectPath); ok {
			return p
		}
	}

	return dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack")
}

// Title returns xesam:title.
func (m Metadata) Title() string {
	return m.str("xesam:title")
}

// Album returns xesam:album.
func (m Metadata) Album() string {
	return m.str("xesam:album")
}

// Duration returns mpris:length.
func (m Metadata) Duration() time.Duration {
	v, ok := m["mpris:length"]
	if !ok {
		return 0
	}

	switch n := v.Value().(type) {
	case int64:
		return time.Duration(n) * time.Microsecond
	case uint64:
		return time.Duration(n) * time.Microsecond
	default:
		return 0
	}
}

// URL returns xesam:url.
func (m Metadata) URL() *url.URL {
	u, err := url.Parse(m.str("xesam:url"))
	if err != nil || u.String() == "" {
		return nil
	}

	return u
}

func (m Metadata) str(k string) string {
	v, ok := m[k]
	if !ok {
		return ""
	}
	if s, ok := v.Value().(string); ok {
		return s
	}

	return strings.Trim(v.String(), `"`)
}
