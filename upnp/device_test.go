package upnp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ericyan/omniplayer/upnp/internal/soap"
)

func newTestDevice() *Device {
	dev := NewDevice("Living Room", "MediaRenderer", 1)

	svc := NewService("RenderingControl", 1)
	svc.RegisterAction("GetVolume", func(req *soap.Request, resp *soap.Response) {
		if req.Args["InstanceID"] != "0" {
			resp.Error = soap.ErrInvalidArgs
			return
		}
		resp.Args["CurrentVolume"] = "42"
	})
	dev.RegisterService(svc)

	return dev
}

func TestDeviceIdentity(t *testing.T) {
	a := NewDevice("Living Room", "MediaRenderer", 1)
	b := NewDevice("Living Room", "MediaRenderer", 1)
	c := NewDevice("Kitchen", "MediaRenderer", 1)

	if a.UDN() != b.UDN() {
		t.Errorf("UDN: got %s and %s for the same device", a.UDN(), b.UDN())
	}
	if a.UDN() == c.UDN() {
		t.Errorf("UDN: got %s for different devices", a.UDN())
	}
	if !strings.HasPrefix(a.UDN(), "uuid:") {
		t.Errorf("UDN: got %s; want uuid: prefix", a.UDN())
	}

	if want := "urn:schemas-upnp-org:device:MediaRenderer:1"; a.URN() != want {
		t.Errorf("URN: got %s; want %s", a.URN(), want)
	}
}

func get(t *testing.T, h http.Handler, path string) *http.Response {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec.Result()
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	return string(b)
}

func TestDeviceDescription(t *testing.T) {
	dev := newTestDevice()

	resp := get(t, dev, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /: got %d; want %d", resp.StatusCode, http.StatusOK)
	}

	desc := body(t, resp)
	for _, want := range []string{
		"<friendlyName>Living Room</friendlyName>",
		"<UDN>" + dev.UDN() + "</UDN>",
		"<serviceType>urn:schemas-upnp-org:service:RenderingControl:1</serviceType>",
		"<controlURL>/services/RenderingControl</controlURL>",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("GET /: missing %s", want)
		}
	}
}

func TestDeviceSCPD(t *testing.T) {
	dev := newTestDevice()

	resp := get(t, dev, "/services/RenderingControl")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET SCPD: got %d; want %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(body(t, resp), "<name>GetVolume</name>") {
		t.Errorf("GET SCPD: GetVolume not described")
	}

	if resp := get(t, dev, "/services/AVTransport"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET unregistered service: got %d; want %d", resp.StatusCode, http.StatusNotFound)
	}
	if resp := get(t, dev, "/favicon.ico"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /favicon.ico: got %d; want %d", resp.StatusCode, http.StatusNotFound)
	}
}

const envelope = `<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <s:Body>
    <u:GetVolume xmlns:u="urn:schemas-upnp-org:service:RenderingControl:1">
      <InstanceID>%s</InstanceID>
      <Channel>Master</Channel>
    </u:GetVolume>
  </s:Body>
</s:Envelope>`

func post(dev *Device, action, instance string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/services/RenderingControl",
		strings.NewReader(strings.Replace(envelope, "%s", instance, 1)))
	req.Header.Set("SOAPAction", `"urn:schemas-upnp-org:service:RenderingControl:1#`+action+`"`)

	rec := httptest.NewRecorder()
	dev.ServeHTTP(rec, req)

	return rec
}

func TestDeviceControl(t *testing.T) {
	dev := newTestDevice()

	rec := post(dev, "GetVolume", "0")
	if rec.Code != http.StatusOK {
		t.Fatalf("GetVolume: got %d; want %d", rec.Code, http.StatusOK)
	}
	if _, ok := rec.Header()["Ext"]; !ok {
		t.Errorf("GetVolume: missing EXT header")
	}
	if !strings.Contains(rec.Body.String(), "<CurrentVolume>42</CurrentVolume>") {
		t.Errorf("GetVolume: got %s", rec.Body.String())
	}

	rec = post(dev, "GetVolume", "1")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("GetVolume with bad instance: got %d; want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "<errorCode>402</errorCode>") {
		t.Errorf("GetVolume with bad instance: got %s", rec.Body.String())
	}

	rec = post(dev, "SetLoudness", "0")
	if !strings.Contains(rec.Body.String(), "<errorCode>401</errorCode>") {
		t.Errorf("unknown action: got %s", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodPost, "/services/RenderingControl", strings.NewReader(envelope))
	bad := httptest.NewRecorder()
	dev.ServeHTTP(bad, req)
	if bad.Code != http.StatusBadRequest {
		t.Errorf("missing SOAPAction: got %d; want %d", bad.Code, http.StatusBadRequest)
	}
}
