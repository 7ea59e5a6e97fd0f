package av

import (
	"strconv"

	"github.com/ericyan/omniplayer/upnp"
	"github.com/ericyan/omniplayer/upnp/internal/soap"
)

// RenderingControl returns a RenderingControl UPnP service for the
// Renderer.
//
// Spec: http://upnp.org/specs/av/UPnP-av-RenderingControl-v1-Service.pdf
func RenderingControl(r Renderer) *upnp.Service {
	svc := upnp.NewService("RenderingControl", 1)

	errInvalidInstanceID := &soap.Error{Code: 702, Description: "Invalid InstanceID"}
	errInvalidPreset := &soap.Error{Code: 701, Description: "Invalid Name"}

	// master wraps an action taking InstanceID 0 and the Master channel.
	master := func(handler upnp.Action) upnp.Action {
		return func(req *soap.Request, resp *soap.Response) {
			if req.Args["InstanceID"] != "0" {
				resp.Error = errInvalidInstanceID
				return
			}
			if req.Args["Channel"] != "Master" {
				resp.Error = soap.ErrInvalidArgs
				return
			}

			handler(req, resp)
		}
	}

	svc.RegisterAction("GetVolume", master(func(req *soap.Request, resp *soap.Response) {
		resp.Args["CurrentVolume"] = strconv.Itoa(r.Volume())
	}))

	svc.RegisterAction("SetVolume", master(func(req *soap.Request, resp *soap.Response) {
		vol, err := strconv.Atoi(req.Args["DesiredVolume"])
		if err != nil {
			resp.Error = soap.ErrInvalidArgs
			return
		}
		if vol < 0 || vol > 100 {
			resp.Error = soap.ErrArgValueOutOfRange
			return
		}

		failed(resp, r.SetVolume(vol))
	}))

	svc.RegisterAction("GetMute", master(func(req *soap.Request, resp *soap.Response) {
		resp.Args["CurrentMute"] = "0"
		if r.Muted() {
			resp.Args["CurrentMute"] = "1"
		}
	}))

	svc.RegisterAction("SetMute", master(func(req *soap.Request, resp *soap.Response) {
		muted, err := strconv.ParseBool(req.Args["DesiredMute"])
		if err != nil {
			resp.Error = soap.ErrInvalidArgs
			return
		}

		failed(resp, r.SetMuted(muted))
	}))

	svc.RegisterAction("ListPresets", func(req *soap.Request, resp *soap.Response) {
		if req.Args["InstanceID"] != "0" {
			resp.Error = errInvalidInstanceID
			return
		}

		resp.Args["CurrentPresetNameList"] = "FactoryDefaults"
	})

	svc.RegisterAction("SelectPreset", func(req *soap.Request, resp *soap.Response) {
		if req.Args["InstanceID"] != "0" {
			resp.Error = errInvalidInstanceID
			return
		}
		if req.Args["PresetName"] != "FactoryDefaults" {
			resp.Error = errInvalidPreset
			return
		}

		failed(resp, r.SetMuted(false))
	})

	return svc
}
