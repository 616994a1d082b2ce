package glinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRequirements(t *testing.T) {
	path := writeManifest(t, `
min_version = "4.1"
extensions = ["GL_ARB_debug_output", "GL_KHR_debug"]
`)
	reqs, err := LoadRequirements(path)
	require.NoError(t, err)
	require.Equal(t, "4.1", reqs.MinVersion)
	require.Equal(t, []string{"GL_ARB_debug_output", "GL_KHR_debug"}, reqs.Extensions)
}

func TestLoadRequirementsMissingFile(t *testing.T) {
	_, err := LoadRequirements(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "requirements manifest")
}

func TestCheck(t *testing.T) {
	report := &Report{
		VersionCode: 33,
		Extensions:  []string{"GL_ARB_texture_storage", "GL_ARB_vertex_array_object"},
	}

	require.NoError(t, (&Requirements{}).Check(report))
	require.NoError(t, (&Requirements{MinVersion: "3.3"}).Check(report))
	require.NoError(t, (&Requirements{Extensions: []string{"GL_ARB_vertex_array_object"}}).Check(report))

	err := (&Requirements{MinVersion: "4.0"}).Check(report)
	require.Error(t, err)
	require.Contains(t, err.Error(), "requirement not met: version code 33 < 40")

	err = (&Requirements{Extensions: []string{"GL_ARB_compute_shader"}}).Check(report)
	require.Error(t, err)
	require.Contains(t, err.Error(), "requirement not met: extension GL_ARB_compute_shader is not advertised")

	err = (&Requirements{MinVersion: "not-a-version"}).Check(report)
	require.Error(t, err)
}

func TestHasExtension(t *testing.T) {
	report := &Report{Extensions: []string{"GL_ARB_a", "GL_ARB_b", "GL_ARB_c"}}
	require.True(t, report.HasExtension("GL_ARB_b"))
	require.False(t, report.HasExtension("GL_ARB_z"))
	require.False(t, (&Report{}).HasExtension("GL_ARB_a"))
}
