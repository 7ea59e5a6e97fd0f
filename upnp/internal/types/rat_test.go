package types

import "testing"

func TestParseFloat32(t *testing.T) {
	cases := []struct {
		in   float32
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{0.5, "1/2"},
		{0.25, "1/4"},
		{0.32, "1/3"},
		{0.66, "2/3"},
		{1.75, "7/4"},
		{-0.5, "-1/2"},
		{3.01, "3"},
	}

	for _, c := range cases {
		if got := ParseFloat32(c.in).String(); got != c.want {
			t.Errorf("ParseFloat32(%g): got %s; want %s", c.in, got, c.want)
		}
	}
}
