//go:build unix

package launch

import "golang.org/x/sys/unix"

// Exec replaces the current process image with argv0.
func Exec(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}
