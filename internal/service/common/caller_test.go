//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveCaller ensures explicit identities win and the fallback is non-empty.
func TestResolveCaller(t *testing.T) {
	t.Parallel()

	caller, err := ResolveCaller("0xa11ce")
	require.NoError(t, err)
	require.Equal(t, "0xa11ce", caller)

	caller, err = ResolveCaller("")
	require.NoError(t, err)
	require.NotEmpty(t, caller)
}
