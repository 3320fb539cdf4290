//go:build darwin

package system

import (
	"os"

	"golang.org/x/sys/unix"
)

// OriginalArgs returns the argument vector the kernel recorded when this
// process was executed. It falls back to os.Args if the sysctl is refused.
func OriginalArgs() []string {
	buf, err := unix.SysctlRaw("kern.procargs2", unix.Getpid())
	if err != nil {
		return append([]string(nil), os.Args...)
	}
	args, err := ParseProcArgs(buf)
	if err != nil || len(args) == 0 {
		return append([]string(nil), os.Args...)
	}
	return args
}
