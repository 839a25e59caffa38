package conv

import "testing"

func TestAppendUint(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{255, "255"},
		{1023, "1023"},
		{18446744073709551615, "18446744073709551615"},
	}
	for _, c := range cases {
		if got := string(AppendUint(nil, c.n)); got != c.want {
			t.Errorf("AppendUint(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestAppendU16Hex(t *testing.T) {
	cases := []struct {
		n    uint16
		want string
	}{
		{0x0000, "0000"},
		{0x0130, "0130"},
		{0xBEEF, "BEEF"},
		{0xFFFF, "FFFF"},
	}
	for _, c := range cases {
		if got := string(AppendU16Hex(nil, c.n)); got != c.want {
			t.Errorf("AppendU16Hex(%#04x) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestAppendDeci(t *testing.T) {
	cases := []struct {
		n    int32
		want string
	}{
		{0, "0.0"},
		{234, "23.4"},
		{-5, "-0.5"},
		{-1234, "-123.4"},
		{1000, "100.0"},
	}
	for _, c := range cases {
		if got := string(AppendDeci(nil, c.n)); got != c.want {
			t.Errorf("AppendDeci(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestAppendBool(t *testing.T) {
	if got := string(AppendBool(nil, true)); got != "true" {
		t.Errorf("AppendBool(true) = %q", got)
	}
	if got := string(AppendBool(nil, false)); got != "false" {
		t.Errorf("AppendBool(false) = %q", got)
	}
}
