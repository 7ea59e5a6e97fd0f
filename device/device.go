// Package device classifies the environment a player runs in.
package device

import (
	"strings"
)

// Class is a coarse classification of the host device.
type Class uint

// Device classes. Any matches every class and is only meaningful as a
// plugin scope.
const (
	Any Class = iota
	PC
	Tablet
	Mobile
)

// String returns the token used in state classes and plugin names.
func (c Class) String() string {
	switch c {
	case Any:
		return "any"
	case PC:
		return "pc"
	case Tablet:
		return "tablet"
	case Mobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// ScopeOf returns the device class a plugin name is reserved for. Names
// that are not device tokens are scoped to Any.
func ScopeOf(name string) Class {
	switch name {
	case "pc":
		return PC
	case "tablet":
		return Tablet
	case "mobile":
		return Mobile
	default:
		return Any
	}
}

// Matches reports whether a plugin scoped to c applies on device d.
func (c Class) Matches(d Class) bool {
	return c == Any || c == d
}

// Sniff derives the device class from a user agent string. An empty user
// agent is treated as a desktop.
func Sniff(ua string) Class {
	has := func(s string) bool { return strings.Contains(ua, s) }

	android := has("Android")
	firefox := has("Firefox")

	switch {
	case has("iPad") || has("PlayBook"),
		android && !has("Mobile"),
		firefox && has("Tablet"):
		return Tablet
	case has("iPhone"), android, has("Windows Phone"), firefox && has("Mobile"):
		return Mobile
	default:
		return PC
	}
}
