// Package launch replaces the running process with an interpreter,
// normally the executable inside a virtual environment's app bundle.
package launch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/venvapp/internal/system"
)

// ExecFunc replaces the current process image. It has the signature of
// unix.Exec and only returns on failure.
type ExecFunc func(argv0 string, argv []string, envv []string) error

// Request describes a process replacement.
type Request struct {
	// Executable is the program to run.
	Executable string
	// Args is the full argument vector of the running process. Args[0] is
	// replaced by Executable; the rest is passed through unchanged.
	Args []string
	// Env is the environment handed to the new image, in "KEY=value" form.
	Env []string
	// Marker, when set, is added to the environment with value "1".
	Marker string
}

// Launcher defines the interface for replacing the current process.
type Launcher interface {
	// Launch does not return on success.
	Launch(ctx context.Context, req *Request) error
}

// ExecLauncher launches by exec'ing in place. The process ID, open file
// descriptors and controlling terminal carry over to the new image.
type ExecLauncher struct {
	exec   ExecFunc
	logger *slog.Logger
}

// New creates an ExecLauncher. A nil exec uses the platform's Exec; a nil
// logger uses slog.Default.
func New(exec ExecFunc, logger *slog.Logger) *ExecLauncher {
	if exec == nil {
		exec = Exec
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecLauncher{exec: exec, logger: logger}
}

// Launch implements the Launcher interface.
func (l *ExecLauncher) Launch(ctx context.Context, req *Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Executable == "" {
		return fmt.Errorf("no executable to launch")
	}

	argv := Argv(req.Executable, req.Args)
	env := req.Env
	if req.Marker != "" {
		env = system.SetEnv(env, req.Marker, "1")
	}

	l.logger.DebugContext(ctx, "exec", "executable", req.Executable, "args", argv[1:])
	if err := l.exec(req.Executable, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", req.Executable, err)
	}
	return nil
}

// Argv builds the argument vector for executable from the running
// process's arguments: argv[0] becomes executable, the rest is kept.
func Argv(executable string, args []string) []string {
	argv := make([]string, 0, max(len(args), 1))
	argv = append(argv, executable)
	if len(args) > 1 {
		argv = append(argv, args[1:]...)
	}
	return argv
}
