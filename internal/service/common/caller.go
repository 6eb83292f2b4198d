//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os/user"
)

// ResolveCaller returns the identity presented to the vault. An explicitly
// provided value wins; otherwise the current OS username is used, so the
// commands work out of the box on a host whose accounts mirror the vault
// parties.
func ResolveCaller(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	currentUser, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}

	return currentUser.Username, nil
}
