package loader

import (
	"fmt"
	"strings"
	"unsafe"

	semver "github.com/blang/semver/v4"
	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// Load resolves every OpenGL entry point of the 3.3 core binding through
// proc and returns the context's version code (major*10+minor, so 3.3 maps
// to 33). The context must be current on the calling thread; proc is the
// provider's resolver (glfw.GetProcAddress or eglGetProcAddress).
func Load(proc func(name string) unsafe.Pointer) (int, error) {
	if err := gl.InitWithProcAddrFunc(proc); err != nil {
		return 0, fmt.Errorf("failed to resolve GL entry points: %w", err)
	}
	return versionCode(), nil
}

// versionCode reads the context version through the integer queries, falling
// back to the GL_VERSION string on contexts that predate them.
func versionCode() int {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major > 0 {
		return int(major)*10 + int(minor)
	}

	code, err := ParseGLVersion(VersionString())
	if err != nil {
		return 0
	}
	return code
}

// VersionString returns the raw GL_VERSION string of the current context.
// Only valid after a successful Load.
func VersionString() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// ParseVersion parses a bare "major.minor" version such as "3.3" or "4.6.0"
// into its version code.
func ParseVersion(s string) (int, error) {
	v, err := semver.ParseTolerant(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid GL version %q: %w", s, err)
	}
	return int(v.Major)*10 + int(v.Minor), nil
}

// ParseGLVersion extracts the version code from a full GL_VERSION string.
// Desktop GL leads with the version ("4.6 (Core Profile) Mesa 23.2.1");
// GLES prefixes it ("OpenGL ES 3.2 Mesa 23.2.1"). The first numeric token
// wins either way.
func ParseGLVersion(version string) (int, error) {
	for _, field := range strings.Fields(version) {
		if field[0] < '0' || field[0] > '9' {
			continue
		}
		return ParseVersion(field)
	}
	return 0, fmt.Errorf("no version token in GL_VERSION string %q", version)
}
