package config

import (
	"time"

	"github.com/ericyan/omniplayer/key"
)

// Field is a configuration setting with its factory value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Default holds every known setting keyed by name.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.LogsLevel, "info", "One of panic, fatal, error, warn, info, debug, trace")
	register(key.LogsJSON, false, "Write logs as JSON")

	register(key.PlayerWidth, 600.0, "Container width in px")
	register(key.PlayerHeight, 337.5, "Container height in px")
	register(key.PlayerInactive, 3*time.Second, "Idle time during playback before the user is inactive")
	register(key.PlayerVolume, 0.6, "Initial volume from 0 to 1")
	register(key.PlayerControls, true, "Show the controls layer")
	register(key.PlayerControlsList, []string{"nodownload"}, "Tokens for the media controlslist attribute")
	register(key.PlayerIgnores, []string{}, "Plugins not to install")
	register(key.PlayerLang, "", "UI language; detected from the locale when empty")
	register(key.PlayerAutoplay, true, "Start playback as soon as media is loaded")
	register(key.PlayerUserAgent, "", "User agent used for device detection")
	register(key.PlayerLoop, false, "Replay media when it ends")

	register(key.Backend, "gcast", "Media backend: gcast or mpris")
	register(key.BackendTimeout, 5*time.Second, "How long to look for a backend device")
	register(key.BackendDevice, "", "Cast device friendly name; the first device found when empty")
	register(key.BackendMPRISDest, "", "MPRIS bus name; the first player found when empty")
	register(key.BackendSenderID, "sender-0", "Cast sender id")

	register(key.RendererHost, "", "Address to serve the renderer on; first private IPv4 when empty")
	register(key.RendererPort, 8200, "Renderer HTTP port")
	register(key.RendererName, "", "Renderer friendly name; derived from the backend when empty")
}
