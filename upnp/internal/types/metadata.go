package types

import (
	"encoding/xml"
	"net/url"

	"github.com/ericyan/omniplayer/upnp/internal/didl"
)

// Metadata maps the local names of DIDL-Lite item properties to their
// values, first occurrence wins.
type Metadata map[string]string

// Title returns dc:title.
func (m Metadata) Title() string {
	return m["title"]
}

// Subtitle returns upnp:album, the closest DIDL-Lite has.
func (m Metadata) Subtitle() string {
	return m["album"]
}

// Class returns upnp:class, e.g. object.item.videoItem.movie.
func (m Metadata) Class() string {
	return m["class"]
}

// ImageURL returns upnp:albumArtURI.
func (m Metadata) ImageURL() *url.URL {
	raw, ok := m["albumArtURI"]
	if !ok {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}

	return u
}

// UnmarshalText fills m with the properties of the first item in the
// DIDL-Lite XML fragment.
func (m Metadata) UnmarshalText(text []byte) error {
	var doc didl.Document
	if err := xml.Unmarshal(text, &doc); err != nil {
		return err
	}
	if len(doc.Items) == 0 {
		return nil
	}

	for _, v := range doc.Items[0].Values {
		if _, ok := m[v.Type()]; !ok {
			m[v.Type()] = v.String()
		}
	}

	return nil
}
