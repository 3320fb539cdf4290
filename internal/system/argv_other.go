//go:build !darwin

package system

import "os"

// OriginalArgs returns the argument vector this process was started with.
// The Go runtime never rewrites os.Args, so a copy of it is exact.
func OriginalArgs() []string {
	return append([]string(nil), os.Args...)
}
