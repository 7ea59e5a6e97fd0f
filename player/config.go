package player

import (
	"os"
	"strings"
	"time"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/tracker"
	"github.com/ericyan/omniplayer/view"
)

// Config describes a player instance. It is fixed once the player is
// constructed.
type Config struct {
	// ID of the container node to mount on.
	ID string
	// Element is used as the container when no node has the ID.
	Element *view.Node

	Width  float64
	Height float64

	// Inactive is how long without interaction before the user is
	// considered inactive during playback.
	Inactive time.Duration

	// Ignores lists plugin names not to install.
	Ignores []string
	// Whitelist is reserved for plugins.
	Whitelist []string

	Controls     bool
	ControlsList []string

	Lang      string
	Volume    float64
	Autoplay  bool
	Media     omniplayer.Media
	UserAgent string
}

// DefaultConfig returns the configuration options are applied on top of.
func DefaultConfig() Config {
	return Config{
		Width:        600,
		Height:       337.5,
		Inactive:     tracker.DefaultInactive,
		Ignores:      []string{},
		Whitelist:    []string{},
		Controls:     true,
		ControlsList: []string{"nodownload"},
		Lang:         detectLang(),
		Volume:       0.6,
	}
}

func (c Config) clone() Config {
	c.Ignores = append([]string{}, c.Ignores...)
	c.Whitelist = append([]string{}, c.Whitelist...)
	c.ControlsList = append([]string{}, c.ControlsList...)
	c.Media.Sources = append([]omniplayer.Source(nil), c.Media.Sources...)

	return c
}

// detectLang derives a lowercased locale tag such as "en-us" from the
// environment.
func detectLang() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}

		return strings.ToLower(strings.ReplaceAll(v, "_", "-"))
	}

	return "zh-cn"
}

type options struct {
	cfg      Config
	bus      *event.Bus
	registry *Registry
}

// Option customizes a player at construction.
type Option func(*options)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg.clone() }
}

// WithID sets the container ID.
func WithID(id string) Option {
	return func(o *options) { o.cfg.ID = id }
}

// WithElement sets the fallback container node.
func WithElement(el *view.Node) Option {
	return func(o *options) { o.cfg.Element = el }
}

// WithSize sets the container dimensions in pixels.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.cfg.Width = width
		o.cfg.Height = height
	}
}

// WithInactive sets the inactivity timeout.
func WithInactive(d time.Duration) Option {
	return func(o *options) { o.cfg.Inactive = d }
}

// WithIgnores skips the named plugins.
func WithIgnores(names ...string) Option {
	return func(o *options) { o.cfg.Ignores = append(o.cfg.Ignores, names...) }
}

// WithWhitelist sets the reserved whitelist.
func WithWhitelist(names ...string) Option {
	return func(o *options) { o.cfg.Whitelist = append(o.cfg.Whitelist, names...) }
}

// WithControls enables or disables the controls.
func WithControls(enabled bool) Option {
	return func(o *options) { o.cfg.Controls = enabled }
}

// WithControlsList replaces the controlslist tokens.
func WithControlsList(tokens ...string) Option {
	return func(o *options) { o.cfg.ControlsList = append([]string{}, tokens...) }
}

// WithLang sets the locale tag.
func WithLang(lang string) Option {
	return func(o *options) { o.cfg.Lang = strings.ToLower(lang) }
}

// WithVolume sets the initial volume level, between 0 and 1.
func WithVolume(level float64) Option {
	return func(o *options) { o.cfg.Volume = level }
}

// WithAutoplay starts playback during construction.
func WithAutoplay(autoplay bool) Option {
	return func(o *options) { o.cfg.Autoplay = autoplay }
}

// WithURL sets the initial media to a single URL.
func WithURL(url string) Option {
	return func(o *options) { o.cfg.Media = omniplayer.URL(url) }
}

// WithSources sets the initial media to an ordered list of sources.
func WithSources(srcs ...omniplayer.Source) Option {
	return func(o *options) { o.cfg.Media = omniplayer.Sources(srcs...) }
}

// WithUserAgent sets the user agent used to classify the device.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.cfg.UserAgent = ua }
}

// WithBus uses b instead of a fresh bus, so that callers can subscribe
// before construction.
func WithBus(b *event.Bus) Option {
	return func(o *options) { o.bus = b }
}

// WithRegistry installs plugins from r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}
