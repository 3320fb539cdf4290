package system

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateBundleID checks that a bundle identifier can be stored in
// Info.plist and understood by LaunchServices. Identifiers derived from
// environment names are not required to be reverse-DNS; only characters
// that break the identifier are rejected.
func ValidateBundleID(bundleID string) error {
	if bundleID == "" {
		return fmt.Errorf("bundle ID cannot be empty")
	}
	if strings.HasPrefix(bundleID, ".") || strings.HasSuffix(bundleID, ".") {
		return fmt.Errorf("bundle ID cannot start or end with a dot: %q", bundleID)
	}
	for _, r := range bundleID {
		switch {
		case unicode.IsSpace(r):
			return fmt.Errorf("bundle ID cannot contain whitespace: %q", bundleID)
		case unicode.IsControl(r):
			return fmt.Errorf("bundle ID cannot contain control characters: %q", bundleID)
		case r == '/' || r == ':':
			return fmt.Errorf("bundle ID cannot contain %q: %q", r, bundleID)
		}
	}
	return nil
}
