package omniplayer

import (
	"errors"
	"testing"
)

func TestError(t *testing.T) {
	cause := errors.New("no such file")
	cases := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindUsage, Subject: "x", Context: map[string]string{"msg": "m", "handle": "New"}}, `usage error (x) handle="New" msg="m"`},
		{NewMediaError(ErrCodeSourceError, cause), "media error (source_error): no such file"},
		{&Error{Kind: KindPlugin}, "plugin error"},
	}

	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error(): got %s; want %s", got, c.want)
		}
	}

	if !errors.Is(NewMediaError(ErrCodeDecoderError, cause), cause) {
		t.Error("media error does not unwrap to its cause")
	}
}

func TestMedia(t *testing.T) {
	cases := []struct {
		m         Media
		zero      bool
		preferred string
	}{
		{Media{}, true, ""},
		{URL("a.mp4"), false, "a.mp4"},
		{Sources(Source{"a.webm", "video/webm"}, Source{"a.mp4", "video/mp4"}), false, "a.webm"},
	}

	for _, c := range cases {
		if got := c.m.IsZero(); got != c.zero {
			t.Errorf("IsZero(%v): got %t; want %t", c.m, got, c.zero)
		}
		if got := c.m.Preferred(); got != c.preferred {
			t.Errorf("Preferred(%v): got %s; want %s", c.m, got, c.preferred)
		}
	}
}
