package omniplayer

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorKind classifies an Error.
type ErrorKind string

// Error kinds.
const (
	// KindUsage means the caller's configuration cannot be satisfied.
	KindUsage ErrorKind = "usage"
	// KindPlugin means an installer failed.
	KindPlugin ErrorKind = "plugin"
	// KindMedia means the media transport reported a failure.
	KindMedia ErrorKind = "media"
)

// Error is the payload of error events.
type Error struct {
	Kind    ErrorKind
	Subject string
	Context map[string]string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error", e.Kind)
	if e.Subject != "" {
		fmt.Fprintf(&b, " (%s)", e.Subject)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err)
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, e.Context[k])
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Canonical media error codes, used as the Subject of KindMedia errors.
const (
	ErrCodeSourceError    = "source_error"
	ErrCodeDecoderError   = "decoder_error"
	ErrCodePlaybackFailed = "playback_failed"
)

// NewMediaError returns a KindMedia error for the given code.
func NewMediaError(code string, err error) *Error {
	return &Error{Kind: KindMedia, Subject: code, Err: err}
}
