// Package upnp serves a UPnP device: its description, service
// descriptions and SOAP control endpoints, plus SSDP announcements.
package upnp

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/rakyll/statik/fs"

	"github.com/ericyan/omniplayer/log"
	_ "github.com/ericyan/omniplayer/upnp/internal/scpd"
	"github.com/ericyan/omniplayer/upnp/internal/soap"
)

// Action handles one SOAP action of a service.
type Action func(*soap.Request, *soap.Response)

type Device struct {
	Name    string
	Type    string
	Version uint

	uuid     uuid.UUID
	services map[string]*Service
	scpd     http.FileSystem
}

// NewDevice returns a device whose UDN is derived from its name and
// type, so it stays stable across restarts.
func NewDevice(name, deviceType string, ver uint) *Device {
	scpd, err := fs.New()
	if err != nil {
		log.WithError(err).Warn("upnp: service descriptions unavailable")
	}

	return &Device{
		Name:     name,
		Type:     deviceType,
		Version:  ver,
		uuid:     uuid.NewMD5(uuid.NameSpaceOID, []byte(name+deviceType)),
		services: make(map[string]*Service),
		scpd:     scpd,
	}
}

func (dev *Device) RegisterService(svc *Service) {
	if svc != nil {
		dev.services[svc.Type] = svc
	}
}

func (dev *Device) UDN() string {
	return "uuid:" + dev.uuid.String()
}

func (dev *Device) URN() string {
	return "urn:schemas-upnp-org:device:" + dev.Type + ":" + strconv.Itoa(int(dev.Version))
}

func (dev *Device) Services() map[string]*Service {
	return dev.services
}

func (dev *Device) ServiceURNs() []string {
	urns := make([]string, 0, len(dev.services))
	for _, svc := range dev.services {
		urns = append(urns, svc.URN())
	}

	return urns
}

func (dev *Device) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path, "from": r.RemoteAddr}).Debug("upnp: request")

	if r.URL.Path == "/" {
		w.Header().Set("Content-Type", `text/xml; charset="utf-8"`)
		if err := dev.writeDevice(w); err != nil {
			log.WithError(err).Warn("upnp: writing device description failed")
		}
		return
	}

	st, ok := strings.CutPrefix(r.URL.Path, "/services/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	svc, ok := dev.services[st]
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		dev.serveSCPD(w, r, st)
	case http.MethodPost:
		req, err := soap.ParseHTTPRequest(r)
		if err != nil {
			log.WithError(err).Debug("upnp: bad SOAP request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := svc.HandleRequest(req)
		w.Header().Set("Content-Type", `text/xml; charset="utf-8"`)
		w.Header().Set("EXT", "")
		w.WriteHeader(resp.StatusCode())
		if err := resp.WriteTo(w); err != nil {
			log.WithError(err).Warn("upnp: writing SOAP response failed")
		}
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (dev *Device) serveSCPD(w http.ResponseWriter, r *http.Request, st string) {
	if dev.scpd == nil {
		http.NotFound(w, r)
		return
	}

	filename := "/" + st + ".xml"
	f, err := dev.scpd.Open(filename)
	if err != nil {
		log.WithError(err).WithField("file", filename).Warn("upnp: missing service description")
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", `text/xml; charset="utf-8"`)
	http.ServeContent(w, r, filename, time.Time{}, f)
}

const deviceTemplate = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>
<root xmlns="urn:schemas-upnp-org:device-1-0">
  <specVersion>
    <major>1</major>
    <minor>0</minor>
  </specVersion>
  <device>
    <deviceType>{{.URN}}</deviceType>
    <UDN>{{.UDN}}</UDN>
    <friendlyName>{{.Name}}</friendlyName>
    <manufacturer>Eric Yan</manufacturer>
    <manufacturerURL>https://ericyan.me/</manufacturerURL>
    <modelName>omniplayer</modelName>
    <modelDescription>Media renderer driving an omniplayer controller</modelDescription>
    <modelNumber>0.1</modelNumber>
    <modelURL>https://github.com/ericyan/omniplayer</modelURL>
    <dlna:X_DLNADOC xmlns:dlna="urn:schemas-dlna-org:device-1-0">DMR-1.50</dlna:X_DLNADOC>
    <serviceList>
    {{- range $path, $svc := .Services }}
      <service>
        <serviceType>{{$svc.URN}}</serviceType>
        <serviceId>urn:upnp-org:serviceId:{{$svc.Type}}</serviceId>
        <controlURL>/services/{{$path}}</controlURL>
        <eventSubURL>/services/{{$path}}/events</eventSubURL>
        <SCPDURL>/services/{{$path}}</SCPDURL>
      </service>
    {{- end}}
    </serviceList>
  </device>
</root>`

var deviceTpl = template.Must(template.New("device").Parse(deviceTemplate))

func (dev *Device) writeDevice(w io.Writer) error {
	return deviceTpl.Execute(w, dev)
}

type Service struct {
	Type    string
	Version uint

	actions map[string]Action
}

func NewService(serviceType string, ver uint) *Service {
	return &Service{
		Type:    serviceType,
		Version: ver,
		actions: make(map[string]Action),
	}
}

func (svc *Service) URN() string {
	return "urn:schemas-upnp-org:service:" + svc.Type + ":" + strconv.Itoa(int(svc.Version))
}

func (svc *Service) RegisterAction(name string, handler Action) {
	svc.actions[name] = handler
}

// HandleRequest dispatches req to the registered action.
func (svc *Service) HandleRequest(req *soap.Request) *soap.Response {
	resp := &soap.Response{Action: req.Action, Args: make(map[string]string)}

	handler, ok := svc.actions[req.Action.Name]
	if !ok {
		resp.Error = soap.ErrInvalidAction
		return resp
	}

	handler(req, resp)
	return resp
}
