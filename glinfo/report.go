package glinfo

import (
	"encoding/json"
	"io"
	"log"
	"sort"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// Report is a snapshot of the loaded context: what the driver answered once
// every entry point was resolved.
type Report struct {
	VersionCode int      `json:"versionCode"`
	Version     string   `json:"version"`
	Vendor      string   `json:"vendor"`
	Renderer    string   `json:"renderer"`
	GLSLVersion string   `json:"glslVersion"`
	Extensions  []string `json:"extensions"`
}

// Collect queries the current context. Only valid after a successful load;
// every getter here is itself a resolved entry point.
func Collect() *Report {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)

	r := &Report{
		VersionCode: int(major)*10 + int(minor),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}

	// Core profile dropped the single EXTENSIONS string; enumerate instead.
	var numExtensions int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &numExtensions)
	r.Extensions = make([]string, 0, numExtensions)
	for i := int32(0); i < numExtensions; i++ {
		r.Extensions = append(r.Extensions, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	sort.Strings(r.Extensions)

	return r
}

// HasExtension reports whether the context advertises the named extension.
// The extension list is kept sorted by Collect.
func (r *Report) HasExtension(name string) bool {
	i := sort.SearchStrings(r.Extensions, name)
	return i < len(r.Extensions) && r.Extensions[i] == name
}

// Log writes the human-readable adapter summary.
func (r *Report) Log() {
	log.Printf("OpenGL version: %s (code %d)", r.Version, r.VersionCode)
	log.Printf("Vendor: %s", r.Vendor)
	log.Printf("Renderer: %s", r.Renderer)
	log.Printf("GLSL version: %s", r.GLSLVersion)
	log.Printf("Extensions: %d", len(r.Extensions))
}

// WriteJSON writes the full report for machine consumption.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
