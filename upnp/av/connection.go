package av

import (
	"strings"

	"github.com/ericyan/omniplayer/upnp"
	"github.com/ericyan/omniplayer/upnp/internal/soap"
)

// SinkProtocols lists the protocolInfo entries the renderer accepts.
var SinkProtocols = []string{
	"http-get:*:video/mp4:*",
	"http-get:*:video/webm:*",
	"http-get:*:video/x-matroska:*",
	"http-get:*:application/x-mpegURL:*",
	"http-get:*:audio/mpeg:*",
	"http-get:*:audio/mp4:*",
	"http-get:*:audio/flac:*",
	"http-get:*:image/jpeg:*",
}

// ConnectionManager returns a ConnectionManager UPnP service with the
// single default connection.
//
// Spec: http://upnp.org/specs/av/UPnP-av-ConnectionManager-v1-Service.pdf
func ConnectionManager() *upnp.Service {
	svc := upnp.NewService("ConnectionManager", 1)

	errInvalidConnection := &soap.Error{Code: 706, Description: "Invalid connection reference"}

	svc.RegisterAction("GetProtocolInfo", func(req *soap.Request, resp *soap.Response) {
		resp.Args["Source"] = ""
		resp.Args["Sink"] = strings.Join(SinkProtocols, ",")
	})

	svc.RegisterAction("GetCurrentConnectionIDs", func(req *soap.Request, resp *soap.Response) {
		resp.Args["ConnectionIDs"] = "0"
	})

	svc.RegisterAction("GetCurrentConnectionInfo", func(req *soap.Request, resp *soap.Response) {
		if req.Args["ConnectionID"] != "0" {
			resp.Error = errInvalidConnection
			return
		}

		resp.Args["RcsID"] = "0"
		resp.Args["AVTransportID"] = "0"
		resp.Args["ProtocolInfo"] = ""
		resp.Args["PeerConnectionManager"] = ""
		resp.Args["PeerConnectionID"] = "-1"
		resp.Args["Direction"] = "Input"
		resp.Args["Status"] = "OK"
	})

	return svc
}
