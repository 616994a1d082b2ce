package glfwcontext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateWindow can report a platform failure as a nil window with a nil
// error; the wrapper must refuse to build a context around the missing
// handle.
func TestWrapWindowNilHandle(t *testing.T) {
	c, err := wrapWindow(nil, nil)
	require.Error(t, err)
	require.Nil(t, c)
	require.Contains(t, err.Error(), "no window")
}

func TestWrapWindowError(t *testing.T) {
	cause := errors.New("APIUnavailable: OpenGL is not available")
	c, err := wrapWindow(nil, cause)
	require.Nil(t, c)
	require.ErrorIs(t, err, cause)
}

func TestToError(t *testing.T) {
	cause := errors.New("NotInitialized: The GLFW library is not initialized")
	require.ErrorIs(t, toError(cause), cause)
	require.EqualError(t, toError("boom"), "boom")
}
