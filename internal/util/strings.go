// Package util provides shared utility functions used across the application.
package util

import "strings"

// StripHash removes the # prefix from a hex colour string.
// This is useful for outputs that don't expect the hash prefix.
func StripHash(hex string) string {
	return strings.TrimPrefix(hex, "#")
}
