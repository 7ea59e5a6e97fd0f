// Package mpris drives desktop media players over the MPRIS D-Bus
// interface.
package mpris

import (
	"errors"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	DBusName       = "org.mpris.MediaPlayer2"
	DBusObjectPath = "/org/mpris/MediaPlayer2"

	playerInterface     = DBusName + ".Player"
	propertiesInterface = "org.freedesktop.DBus.Properties"
)

// ErrNoPlayer is returned when no MPRIS player is on the session bus.
var ErrNoPlayer = errors.New("no mpris player instance found")

// Discover returns the bus names of the MPRIS players available.
func Discover() ([]string, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}

	return listPlayers(conn)
}

func listPlayers(conn *dbus.Conn) ([]string, error) {
	var names []string
	err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names)
	if err != nil {
		return nil, err
	}

	dests := playerNames(names)
	if len(dests) == 0 {
		return nil, ErrNoPlayer
	}

	return dests, nil
}

func playerNames(names []string) []string {
	var dests []string
	for _, name := range names {
		if strings.HasPrefix(name, DBusName+".") {
			dests = append(dests, name)
		}
	}

	return dests
}
