package av

import (
	"net/url"
	"strconv"

	"github.com/ericyan/omniplayer/log"
	"github.com/ericyan/omniplayer/upnp"
	"github.com/ericyan/omniplayer/upnp/internal/soap"
	"github.com/ericyan/omniplayer/upnp/internal/types"
)

// Action-specific errors defined in AVTransport:1 service spec.
var (
	ErrTransitionNotAvailable = &soap.Error{Code: 701, Description: "Transition not available"}
	ErrNoContents             = &soap.Error{Code: 702, Description: "No contents"}
	ErrSeekModeNotSupported   = &soap.Error{Code: 710, Description: "Seek mode not supported"}
	ErrIllegalSeekTarget      = &soap.Error{Code: 711, Description: "Illegal seek target"}
	ErrPlaySpeedNotSupported  = &soap.Error{Code: 717, Description: "Play speed not supported"}
	ErrInvalidInstanceID      = &soap.Error{Code: 718, Description: "Invalid InstanceID"}
)

// instance wraps an action so that only InstanceID 0 is accepted.
func instance(handler upnp.Action) upnp.Action {
	return func(req *soap.Request, resp *soap.Response) {
		if req.Args["InstanceID"] != "0" {
			resp.Error = ErrInvalidInstanceID
			return
		}

		handler(req, resp)
	}
}

func failed(resp *soap.Response, err error) {
	if err != nil {
		log.WithError(err).WithField("action", resp.Action.Name).Warn("upnp: action failed")
		resp.Error = soap.ErrActionFailed
	}
}

// AVTransport returns an AVTransport UPnP service for the Renderer.
//
// Spec: http://upnp.org/specs/av/UPnP-av-AVTransport-v1-Service.pdf
func AVTransport(r Renderer) *upnp.Service {
	svc := upnp.NewService("AVTransport", 1)

	svc.RegisterAction("SetAVTransportURI", instance(func(req *soap.Request, resp *soap.Response) {
		uri, ok := req.Args["CurrentURI"]
		if !ok {
			resp.Error = soap.ErrInvalidArgs
			return
		}

		u, err := url.Parse(uri)
		if err != nil || !u.IsAbs() {
			resp.Error = soap.ErrArgValueInvalid
			return
		}

		meta := req.Args["CurrentURIMetaData"]
		if meta != "" {
			m := make(types.Metadata)
			if err := m.UnmarshalText([]byte(meta)); err != nil {
				log.WithError(err).Debug("upnp: parsing metadata failed")
			} else {
				log.WithFields(log.Fields{"uri": uri, "title": m.Title()}).Info("upnp: transport URI set")
			}
		}

		failed(resp, r.Load(u.String(), meta))
	}))

	svc.RegisterAction("GetMediaInfo", instance(func(req *soap.Request, resp *soap.Response) {
		st := r.Status()

		resp.Args["NrTracks"] = "0"
		resp.Args["MediaDuration"] = types.FormatDuration(0)
		if st.State != NoMediaPresent {
			resp.Args["NrTracks"] = "1"
			resp.Args["MediaDuration"] = types.FormatDuration(st.Duration)
		}
		resp.Args["CurrentURI"] = st.URI
		resp.Args["CurrentURIMetaData"] = st.Metadata
		resp.Args["NextURI"] = ""
		resp.Args["NextURIMetaData"] = ""
		resp.Args["PlayMedium"] = "NETWORK"
		resp.Args["RecordMedium"] = "NOT_IMPLEMENTED"
		resp.Args["WriteStatus"] = "NOT_IMPLEMENTED"
	}))

	svc.RegisterAction("GetTransportInfo", instance(func(req *soap.Request, resp *soap.Response) {
		st := r.Status()

		resp.Args["CurrentTransportState"] = string(st.State)
		resp.Args["CurrentTransportStatus"] = "OK"
		if st.Errored {
			resp.Args["CurrentTransportStatus"] = "ERROR_OCCURRED"
		}
		resp.Args["CurrentSpeed"] = types.ParseFloat32(1).String()
	}))

	svc.RegisterAction("GetPositionInfo", instance(func(req *soap.Request, resp *soap.Response) {
		st := r.Status()

		pos := st.Position
		resp.Args["Track"] = "1"
		if st.State == NoMediaPresent {
			pos = 0
			resp.Args["Track"] = "0"
		}

		resp.Args["TrackURI"] = st.URI
		resp.Args["TrackMetaData"] = st.Metadata
		resp.Args["TrackDuration"] = types.FormatDuration(st.Duration)
		resp.Args["RelTime"] = types.FormatDuration(pos)
		resp.Args["AbsTime"] = types.FormatDuration(pos)
		resp.Args["RelCount"] = strconv.Itoa(int(pos.Seconds()))
		resp.Args["AbsCount"] = strconv.Itoa(int(pos.Seconds()))
	}))

	svc.RegisterAction("GetDeviceCapabilities", instance(func(req *soap.Request, resp *soap.Response) {
		resp.Args["PlayMedia"] = "NETWORK"
		resp.Args["RecMedia"] = "NOT_IMPLEMENTED"
		resp.Args["RecQualityModes"] = "NOT_IMPLEMENTED"
	}))

	svc.RegisterAction("GetTransportSettings", instance(func(req *soap.Request, resp *soap.Response) {
		resp.Args["PlayMode"] = "NORMAL"
		resp.Args["RecQualityMode"] = "NOT_IMPLEMENTED"
	}))

	svc.RegisterAction("GetCurrentTransportActions", instance(func(req *soap.Request, resp *soap.Response) {
		var actions string
		switch r.Status().State {
		case Playing, Transitioning:
			actions = "Pause,Stop,Seek"
		case PausedPlayback:
			actions = "Play,Stop,Seek"
		case Stopped:
			actions = "Play,Seek"
		}
		resp.Args["Actions"] = actions
	}))

	svc.RegisterAction("Play", instance(func(req *soap.Request, resp *soap.Response) {
		if speed, ok := req.Args["Speed"]; ok && speed != "1" {
			resp.Error = ErrPlaySpeedNotSupported
			return
		}
		if r.Status().State == NoMediaPresent {
			resp.Error = ErrNoContents
			return
		}

		failed(resp, r.Play())
	}))

	svc.RegisterAction("Pause", instance(func(req *soap.Request, resp *soap.Response) {
		switch r.Status().State {
		case Playing, Transitioning:
		default:
			resp.Error = ErrTransitionNotAvailable
			return
		}

		failed(resp, r.Pause())
	}))

	svc.RegisterAction("Stop", instance(func(req *soap.Request, resp *soap.Response) {
		if r.Status().State == NoMediaPresent {
			resp.Error = ErrTransitionNotAvailable
			return
		}

		failed(resp, r.Stop())
	}))

	svc.RegisterAction("Seek", instance(func(req *soap.Request, resp *soap.Response) {
		switch req.Args["Unit"] {
		case "ABS_TIME", "REL_TIME":
			pos, err := types.ParseDuration(req.Args["Target"])
			if err != nil || pos < 0 {
				resp.Error = ErrIllegalSeekTarget
				return
			}
			if d := r.Status().Duration; d > 0 && pos > d {
				resp.Error = ErrIllegalSeekTarget
				return
			}

			failed(resp, r.Seek(pos))
		default:
			resp.Error = ErrSeekModeNotSupported
		}
	}))

	return svc
}
