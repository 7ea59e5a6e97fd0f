// Package didl models the DIDL-Lite documents used as media metadata in
// UPnP AV.
package didl

import (
	"encoding/xml"
)

// XML namespaces used in DIDL-Lite documents.
const (
	NamespaceDIDL = "urn:schemas-upnp-org:metadata-1-0/DIDL-Lite/"
	NamespaceDC   = "http://purl.org/dc/elements/1.1/"
	NamespaceUPnP = "urn:schemas-upnp-org:metadata-1-0/upnp/"
)

// String represents a string value
type String struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Type returns value type, as the local part of the element name.
func (s *String) Type() string {
	return s.XMLName.Local
}

// String returns the value as a string.
func (s *String) String() string {
	return s.Value
}

// Res is a resource of an item: its URI and how it is served.
type Res struct {
	ProtocolInfo string `xml:"protocolInfo,attr"`
	URI          string `xml:",chardata"`
}

// Item represents an item element.
type Item struct {
	XMLName    xml.Name
	ID         string    `xml:"id,attr"`
	ParentID   string    `xml:"parentID,attr"`
	Restricted string    `xml:"restricted,attr"`
	Res        []Res     `xml:"res"`
	Values     []*String `xml:",any"`
}

// Document represents a DIDL-Lite document. The root element name is
// not checked when decoding.
type Document struct {
	XMLName xml.Name
	Items   []Item `xml:"item"`
}

// NewItem returns a document describing a single item.
func NewItem(title, class, uri, mimeType string) *Document {
	return &Document{
		XMLName: xml.Name{Space: NamespaceDIDL, Local: "DIDL-Lite"},
		Items: []Item{{
			XMLName:    xml.Name{Local: "item"},
			ID:         "0",
			ParentID:   "-1",
			Restricted: "1",
			Res:        []Res{{ProtocolInfo: "http-get:*:" + mimeType + ":*", URI: uri}},
			Values: []*String{
				{XMLName: xml.Name{Space: NamespaceDC, Local: "title"}, Value: title},
				{XMLName: xml.Name{Space: NamespaceUPnP, Local: "class"}, Value: class},
			},
		}},
	}
}

// MarshalText encodes the document as XML.
func (d *Document) MarshalText() ([]byte, error) {
	return xml.Marshal(d)
}
