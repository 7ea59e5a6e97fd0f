// Package key lists the configuration keys understood by omniplayer.
package key

// Logging.
const (
	LogsLevel = "logs.level"
	LogsJSON  = "logs.json"
)

// Player defaults applied to every instance.
const (
	PlayerWidth        = "player.width"
	PlayerHeight       = "player.height"
	PlayerInactive     = "player.inactive"
	PlayerVolume       = "player.volume"
	PlayerControls     = "player.controls"
	PlayerControlsList = "player.controls_list"
	PlayerIgnores      = "player.ignores"
	PlayerLang         = "player.lang"
	PlayerAutoplay     = "player.autoplay"
	PlayerUserAgent    = "player.user_agent"
	PlayerLoop         = "player.loop"
)

// Backend selection and discovery.
const (
	Backend          = "backend.name"
	BackendTimeout   = "backend.discovery_timeout"
	BackendDevice    = "backend.device"
	BackendMPRISDest = "backend.mpris_dest"
	BackendSenderID  = "backend.sender_id"
)

// UPnP renderer.
const (
	RendererHost = "renderer.host"
	RendererPort = "renderer.port"
	RendererName = "renderer.name"
)
