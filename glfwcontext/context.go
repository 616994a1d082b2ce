package glfwcontext

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	options "github.com/chill-nemesis/glad-cmake-python-fix/options"
)

// Context wraps the GLFW window that owns the GL context for a smoke run.
type Context struct {
	window *glfw.Window
}

// New creates a window with an OpenGL 3.3 core-profile context and returns a
// Context object. The window is hidden unless the options ask for a visible
// one; the smoke run only needs the context behind it.
func New(opts *options.SmokeOptions) (c *Context, err error) {
	// The binding escalates unexpected GLFW errors to panics; hand them to
	// the caller as ordinary creation errors.
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, toError(r)
		}
	}()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// Fixed-size probe surface, per-run lifetime.
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if *opts.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	return wrapWindow(glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil))
}

// wrapWindow validates what CreateWindow handed back. On platform failures
// the binding logs the cause and returns a nil window with a nil error; the
// missing handle is the creation failure, so report it as one.
func wrapWindow(win *glfw.Window, err error) (*Context, error) {
	if err != nil {
		return nil, err
	}
	if win == nil {
		return nil, errors.New("glfw returned no window")
	}
	return &Context{window: win}, nil
}

// toError converts a recovered panic value into an error.
func toError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// MakeCurrent makes the context current for the calling goroutine. The
// caller must already be locked to its OS thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// ProcAddress resolves a GL entry point through GLFW. Valid only while the
// context is current.
func (c *Context) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// EndFrame swaps the buffers, presenting the rendered frame.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

// DetachCurrent makes no context current on the calling thread.
func (c *Context) DetachCurrent() {
	glfw.DetachCurrentContext()
}

// Shutdown detaches the context and destroys the window, leaving the thread
// with no current context. TerminateGraphics releases everything else.
func (c *Context) Shutdown() {
	c.DetachCurrent()
	c.window.Destroy()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := initSubsystem(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// initSubsystem runs glfw.Init and confirms the library actually came up.
// Init reports platform failures (no display server, dead X socket) through
// a logged callback and a nil return, leaving the library uninitialized; the
// timer probe trips the NotInitialized panic inside this frame, where it
// becomes an init error instead of a crash at the first window call.
func initSubsystem() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toError(r)
		}
	}()
	if err := glfw.Init(); err != nil {
		return err
	}
	glfw.GetTime()
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
