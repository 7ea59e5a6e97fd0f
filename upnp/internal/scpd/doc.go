// Package scpd embeds the service description documents of the media
// renderer. Regenerate statik.go after editing xml/.
package scpd

//go:generate statik -src=./xml -dest=.. -p=scpd -f -m
