package smoke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailfNamesCallSite(t *testing.T) {
	err := failf("glad version %d < %d", 21, 33)
	require.Error(t, err)
	require.Regexp(t, `^assert_test\.go\(\d+\): glad version 21 < 33$`, err.Error())
}
