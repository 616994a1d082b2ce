package graphics

import "unsafe"

// Context defines the interface for an OpenGL context.
// Both the windowed (glfw) and headless (EGL pbuffer) providers produce one;
// the smoke run drives whichever it is given.
type Context interface {
	// MakeCurrent binds the context to the calling OS thread. All GL calls
	// after this target the context.
	MakeCurrent()
	// ProcAddress resolves a GL entry point by name. It is only valid while
	// the context is current; the loader feeds every GL function through it.
	ProcAddress(name string) unsafe.Pointer
	// GetFramebufferSize returns the drawable size in pixels, which can
	// differ from the requested window size on scaled displays.
	GetFramebufferSize() (int, int)
	// EndFrame presents the rendered frame (buffer swap).
	EndFrame()
	Shutdown()
}
