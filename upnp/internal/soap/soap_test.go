package soap

import (
	"net/http"
	"strings"
	"testing"
)

const setURIRequest = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <s:Body>
    <u:SetAVTransportURI xmlns:u="urn:schemas-upnp-org:service:AVTransport:1">
      <InstanceID>0</InstanceID>
      <CurrentURI>http://example.com/a.mp4?x=1&amp;y=2</CurrentURI>
      <CurrentURIMetaData>&lt;DIDL-Lite&gt;&lt;/DIDL-Lite&gt;</CurrentURIMetaData>
    </u:SetAVTransportURI>
  </s:Body>
</s:Envelope>`

const avTransport = "urn:schemas-upnp-org:service:AVTransport:1"

func TestParseAction(t *testing.T) {
	cases := []struct {
		header string
		name   string
		ok     bool
	}{
		{`"` + avTransport + `#Play"`, "Play", true},
		{avTransport + `#Pause`, "Pause", true},
		{`"` + avTransport + `"`, "", false},
		{``, "", false},
	}

	for _, c := range cases {
		a, err := ParseAction(c.header)
		if c.ok != (err == nil) {
			t.Errorf("ParseAction(%s): got error %v", c.header, err)
			continue
		}
		if c.ok && (a.Name != c.name || a.Namespace != avTransport) {
			t.Errorf("ParseAction(%s): got %+v", c.header, a)
		}
	}
}

func TestParseHTTPRequest(t *testing.T) {
	r, _ := http.NewRequest(http.MethodPost, "/services/AVTransport", strings.NewReader(setURIRequest))
	r.Header.Set("SOAPAction", `"`+avTransport+`#SetAVTransportURI"`)

	req, err := ParseHTTPRequest(r)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"InstanceID":         "0",
		"CurrentURI":         "http://example.com/a.mp4?x=1&y=2",
		"CurrentURIMetaData": "<DIDL-Lite></DIDL-Lite>",
	}
	for k, v := range want {
		if got := req.Args[k]; got != v {
			t.Errorf("Args[%s]: got %q; want %q", k, got, v)
		}
	}
}

func TestParseHTTPRequestTruncated(t *testing.T) {
	r, _ := http.NewRequest(http.MethodPost, "/", strings.NewReader(setURIRequest[:200]))
	r.Header.Set("SOAPAction", `"`+avTransport+`#SetAVTransportURI"`)

	if _, err := ParseHTTPRequest(r); err == nil {
		t.Error("ParseHTTPRequest: expected an error for a truncated body")
	}
}

func TestResponse(t *testing.T) {
	action := &Action{avTransport, "GetTransportInfo"}

	var b strings.Builder
	resp := &Response{Action: action, Args: map[string]string{"CurrentTransportState": "PLAYING", "CurrentSpeed": "1"}}
	if err := resp.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "<u:GetTransportInfoResponse") || !strings.Contains(out, "<CurrentTransportState>PLAYING</CurrentTransportState>") {
		t.Errorf("WriteTo: unexpected body %s", out)
	}
	if strings.Index(out, "CurrentSpeed") > strings.Index(out, "CurrentTransportState") {
		t.Errorf("WriteTo: arguments not sorted")
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode: got %d", resp.StatusCode())
	}

	b.Reset()
	resp = &Response{Action: action, Error: ErrInvalidArgs}
	resp.WriteTo(&b)
	if !strings.Contains(b.String(), "<errorCode>402</errorCode>") || strings.Contains(b.String(), "GetTransportInfoResponse") {
		t.Errorf("WriteTo: unexpected fault %s", b.String())
	}
	if resp.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode: got %d", resp.StatusCode())
	}
}
