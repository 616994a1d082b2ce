package loader

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in   string
		code int
		ok   bool
	}{
		{"3.3", 33, true},
		{"3.3.0", 33, true},
		{"4.6", 46, true},
		{" 4.1 ", 41, true},
		{"2.1", 21, true},
		{"", 0, false},
		{"core", 0, false},
	}
	for _, c := range cases {
		code, err := ParseVersion(c.in)
		if !c.ok {
			require.Error(t, err, "input %q", c.in)
			continue
		}
		require.NoError(t, err, "input %q", c.in)
		require.Equal(t, c.code, code, "input %q", c.in)
	}
}

func TestParseGLVersion(t *testing.T) {
	cases := []struct {
		in   string
		code int
		ok   bool
	}{
		{"3.3.0 NVIDIA 535.146.02", 33, true},
		{"4.6 (Core Profile) Mesa 23.2.1-1ubuntu3", 46, true},
		{"OpenGL ES 3.2 Mesa 23.2.1", 32, true},
		{"4.1 ATI-4.14.1", 41, true},
		{"", 0, false},
		{"not a version at all", 0, false},
	}
	for _, c := range cases {
		code, err := ParseGLVersion(c.in)
		if !c.ok {
			require.Error(t, err, "input %q", c.in)
			continue
		}
		require.NoError(t, err, "input %q", c.in)
		require.Equal(t, c.code, code, "input %q", c.in)
	}
}

// Load against a resolver that knows no symbols must fail during resolution
// and must not touch any GL entry point.
func TestLoadUnresolvable(t *testing.T) {
	code, err := Load(func(string) unsafe.Pointer { return nil })
	require.Error(t, err)
	require.Equal(t, 0, code)
}
