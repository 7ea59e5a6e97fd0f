package ssdp

import (
	"bufio"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

type device struct{}

func (device) UDN() string { return "uuid:00000000-0000-0000-0000-000000000001" }
func (device) URN() string { return "urn:schemas-upnp-org:device:MediaRenderer:1" }
func (device) ServiceURNs() []string {
	return []string{"urn:schemas-upnp-org:service:AVTransport:1"}
}

func newTestServer(t *testing.T) *Server {
	srv, err := NewServer(device{}, &url.URL{Scheme: "http", Host: "192.168.1.2:8200", Path: "/"})
	if err != nil {
		t.Fatal(err)
	}

	return srv
}

func search(st, man string) *http.Request {
	raw := "M-SEARCH * HTTP/1.1\r\nHOST: 239.255.255.250:1900\r\nMAN: " + man + "\r\nMX: 1\r\nST: " + st + "\r\n\r\n"
	req, _ := http.ReadRequest(bufio.NewReader(strings.NewReader(raw)))
	return req
}

func TestResponses(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		st   string
		man  string
		want int
	}{
		{"ssdp:all", `"ssdp:discover"`, 4},
		{"upnp:rootdevice", `"ssdp:discover"`, 1},
		{"urn:schemas-upnp-org:service:AVTransport:1", `"ssdp:discover"`, 1},
		{"urn:schemas-upnp-org:service:ContentDirectory:1", `"ssdp:discover"`, 0},
		{"ssdp:all", `ssdp:discover`, 0},
	}

	for _, c := range cases {
		resps, err := srv.responses(search(c.st, c.man))
		if len(resps) != c.want {
			t.Errorf("responses(%s, %s): got %d (%v); want %d", c.st, c.man, len(resps), err, c.want)
		}
		if c.want == 0 && err == nil {
			t.Errorf("responses(%s, %s): expected an error", c.st, c.man)
		}
	}
}

func TestResponseHeaders(t *testing.T) {
	srv := newTestServer(t)

	resps, err := srv.responses(search("urn:schemas-upnp-org:service:AVTransport:1", `"ssdp:discover"`))
	if err != nil {
		t.Fatal(err)
	}

	h := resps[0].Header
	if got := h.Get("USN"); got != "uuid:00000000-0000-0000-0000-000000000001::urn:schemas-upnp-org:service:AVTransport:1" {
		t.Errorf("USN: got %s", got)
	}
	if got := h.Get("LOCATION"); got != "http://192.168.1.2:8200/" {
		t.Errorf("LOCATION: got %s", got)
	}
}

func TestSendNotificationNTS(t *testing.T) {
	srv := newTestServer(t)

	if err := srv.sendNotification(nil, "ssdp:update"); err == nil {
		t.Error("sendNotification(ssdp:update): expected an error")
	}
	if err := srv.sendNotification(nil, "bogus"); err == nil {
		t.Error("sendNotification(bogus): expected an error")
	}
}
