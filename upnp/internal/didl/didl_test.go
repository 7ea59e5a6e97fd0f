package didl

import (
	"encoding/xml"
	"testing"
)

func TestNewItem(t *testing.T) {
	text, err := NewItem("clip.mp4", "object.item.videoItem", "http://example.com/clip.mp4", "video/mp4").MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var d Document
	if err := xml.Unmarshal(text, &d); err != nil {
		t.Fatal(err)
	}
	if len(d.Items) != 1 {
		t.Fatalf("Items: got %d; want 1", len(d.Items))
	}

	item := d.Items[0]
	if len(item.Res) != 1 || item.Res[0].URI != "http://example.com/clip.mp4" {
		t.Errorf("Res: got %+v", item.Res)
	}
	if got := item.Res[0].ProtocolInfo; got != "http-get:*:video/mp4:*" {
		t.Errorf("ProtocolInfo: got %s", got)
	}
	if len(item.Values) != 2 || item.Values[0].Type() != "title" || item.Values[0].String() != "clip.mp4" {
		t.Errorf("Values: got %+v", item.Values)
	}
}
