// Package user names the operator recorded in the export history.
package user

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is recorded when no name can be found
const Unknown = "unknown"

// Operator returns who is running ugcctl.
// UGCCTL_USER wins, then the OS account, then $USER.
func Operator() string {
	if name := strings.TrimSpace(os.Getenv("UGCCTL_USER")); name != "" {
		return name
	}

	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}

	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return Unknown
}
