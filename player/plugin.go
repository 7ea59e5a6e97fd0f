package player

import (
	"sync"

	"github.com/samber/lo"

	"github.com/ericyan/omniplayer"
	"github.com/ericyan/omniplayer/device"
)

// Installer extends a player when it is constructed.
type Installer func(p *Player) error

// Entry is a registered installer.
type Entry struct {
	Name      string
	Scope     device.Class
	Installer Installer
}

// Registry is an ordered table of installers.
//
// Install is expected to run during program setup. It must not race with
// Apply: installers registered while a player is being constructed may or
// may not be applied to it.
type Registry struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return new(Registry)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// Install registers fn under name in the default registry.
func Install(name string, fn Installer) {
	DefaultRegistry().Install(name, fn)
}

// Install registers fn under name. Installing a name again replaces the
// installer but keeps its position. The names pc, tablet and mobile scope
// the installer to that device class.
func (r *Registry) Install(name string, fn Installer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := &Entry{Name: name, Scope: device.ScopeOf(name), Installer: fn}
	for i, e := range r.entries {
		if e.Name == name {
			r.entries[i] = entry
			return
		}
	}
	r.entries = append(r.entries, entry)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.entries, func(e *Entry, _ int) string { return e.Name })
}

// Apply runs, in registration order, every installer that is not ignored
// and whose scope matches class. The first failing installer stops Apply;
// its error is returned as a KindPlugin error. It returns the names of the
// installers that ran.
func (r *Registry) Apply(p *Player, class device.Class, ignores []string) ([]string, error) {
	r.mu.RLock()
	entries := append([]*Entry(nil), r.entries...)
	r.mu.RUnlock()

	var applied []string
	for _, e := range entries {
		if lo.Contains(ignores, e.Name) || !e.Scope.Matches(class) {
			continue
		}

		if err := e.Installer(p); err != nil {
			return applied, &omniplayer.Error{
				Kind:    omniplayer.KindPlugin,
				Subject: e.Name,
				Context: map[string]string{"handle": "Apply"},
				Err:     err,
			}
		}
		applied = append(applied, e.Name)
	}

	return applied, nil
}
