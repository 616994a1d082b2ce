package options

// SmokeOptions carries the parsed command-line options for a smoke run.
// Fields are pointers so the flag package can bind them directly.
type SmokeOptions struct {
	Width        *int
	Height       *int
	Title        *string
	Help         *bool
	Log          *bool // Emit progress logging (stdout); off keeps a clean run silent.
	Visible      *bool // Smoke runs default to a hidden window; -visible shows it.
	Headless     *bool // Use the EGL pbuffer provider instead of GLFW (linux only).
	MinVersion   *string
	ClearColor   *string // "r,g,b,a" components in [0,1]
	Report       *bool
	JSON         *bool
	Verify       *bool
	Snapshot     *string // Write the rendered frame to this PNG path.
	Requirements *string // TOML manifest checked against the loaded context.
	Profile      *string // Directory for a CPU profile of the run.
}
