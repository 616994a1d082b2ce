package smoke

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// failf builds the one-line diagnostic the harness greps on failure:
// "<file>(<line>): <message>", where file and line name the assertion site.
func failf(format string, args ...any) error {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf(format, args...)
	}
	return fmt.Errorf("%s(%d): %s", filepath.Base(file), line, fmt.Sprintf(format, args...))
}
