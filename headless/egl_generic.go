//go:build !linux

package headless

import (
	"fmt"

	"github.com/chill-nemesis/glad-cmake-python-fix/graphics"
)

func NewHeadless(width, height int) (graphics.Context, error) {
	return nil, fmt.Errorf("egl headless mode is not supported on this platform")
}
