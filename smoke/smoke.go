package smoke

import (
	"fmt"
	"log"
	"os"

	gl "github.com/go-gl/gl/v3.3-core/gl"

	"github.com/chill-nemesis/glad-cmake-python-fix/glfwcontext"
	"github.com/chill-nemesis/glad-cmake-python-fix/glinfo"
	"github.com/chill-nemesis/glad-cmake-python-fix/graphics"
	"github.com/chill-nemesis/glad-cmake-python-fix/headless"
	"github.com/chill-nemesis/glad-cmake-python-fix/loader"
	"github.com/chill-nemesis/glad-cmake-python-fix/options"
)

// Package-level wiring for the subsystem, providers and loader. Kept as
// variables so the run sequence itself stays linear.
var (
	initGraphics       = glfwcontext.InitGraphics
	terminateGraphics  = glfwcontext.TerminateGraphics
	newWindowContext   = windowContext
	newHeadlessContext = headlessContext
	loadGL             = loader.Load
	collectReport      = glinfo.Collect
	renderFrame        = drawClear
)

func windowContext(opts *options.SmokeOptions) (graphics.Context, error) {
	return glfwcontext.New(opts)
}

func headlessContext(opts *options.SmokeOptions) (graphics.Context, error) {
	return headless.NewHeadless(*opts.Width, *opts.Height)
}

// Run executes the full smoke sequence and returns the process exit code:
// 0 on success, 1 on the first failed step. The failing step leaves a single
// diagnostic line on stderr; a clean run leaves stderr empty.
func Run(opts *options.SmokeOptions) int {
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func run(opts *options.SmokeOptions) (err error) {
	// The GLFW binding escalates some driver errors to panics; anything that
	// slips through the step checks still has to land on the
	// one-line-diagnostic, exit-1 contract.
	defer func() {
		if r := recover(); r != nil {
			err = failf("unexpected graphics failure: %v", r)
		}
	}()

	if *opts.Width <= 0 || *opts.Height <= 0 {
		return failf("invalid probe size %dx%d", *opts.Width, *opts.Height)
	}

	if *opts.Headless {
		// EGL brings up its own display; there is no shared subsystem to
		// initialize or terminate.
		return runContext(opts, newHeadlessContext)
	}

	if err := initGraphics(); err != nil {
		return failf("glfw init failed: %v", err)
	}
	defer terminateGraphics()

	return runContext(opts, newWindowContext)
}

// runContext drives one context through hint/create/bind/load/render/present.
func runContext(opts *options.SmokeOptions, create func(*options.SmokeOptions) (graphics.Context, error)) error {
	minCode, err := loader.ParseVersion(*opts.MinVersion)
	if err != nil {
		return failf("invalid minimum version: %v", err)
	}
	clearColor, err := ParseClearColor(*opts.ClearColor)
	if err != nil {
		return failf("%v", err)
	}

	ctx, err := create(opts)
	if err != nil {
		return failf("glfw window creation failed: %v", err)
	}
	defer ctx.Shutdown()

	ctx.MakeCurrent()

	version, err := loadGL(ctx.ProcAddress)
	if err != nil {
		return failf("glad load failed: %v", err)
	}
	if version < minCode {
		return failf("glad version %d < %d", version, minCode)
	}
	log.Printf("Loaded OpenGL, version code %d", version)

	if *opts.Report || *opts.JSON || *opts.Requirements != "" {
		report := collectReport()
		if *opts.Report {
			report.Log()
		}
		if *opts.JSON {
			if err := report.WriteJSON(os.Stdout); err != nil {
				return failf("failed to write report: %v", err)
			}
		}
		if *opts.Requirements != "" {
			reqs, err := glinfo.LoadRequirements(*opts.Requirements)
			if err != nil {
				return failf("%v", err)
			}
			if err := reqs.Check(report); err != nil {
				return failf("%v", err)
			}
		}
	}

	width, height := ctx.GetFramebufferSize()
	renderFrame(width, height, clearColor)

	// Read back before the swap: the back buffer holds the frame just
	// rendered, and the swap then presents exactly what was verified.
	if *opts.Verify || *opts.Snapshot != "" {
		pix := readFramebuffer(width, height)
		if *opts.Verify {
			if err := verifyClear(pix, width, clearColor); err != nil {
				return failf("%v", err)
			}
			log.Printf("Clear verified across %dx%d pixels", width, height)
		}
		if *opts.Snapshot != "" {
			if err := writeSnapshot(*opts.Snapshot, pix, width, height); err != nil {
				return failf("%v", err)
			}
			log.Printf("Snapshot written to %s", *opts.Snapshot)
		}
	}

	ctx.EndFrame()

	return nil
}

// drawClear issues the render step: viewport to the drawable size, then
// clear the color buffer to the requested color.
func drawClear(width, height int, color [4]float32) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
