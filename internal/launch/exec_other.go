//go:build !unix

package launch

import "errors"

// Exec is unsupported on platforms without execve.
func Exec(argv0 string, argv []string, envv []string) error {
	return errors.ErrUnsupported
}
