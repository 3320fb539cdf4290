package venvapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	slogctx "github.com/veqryn/slog-context"

	"github.com/tmc/venvapp/internal/launch"
	"github.com/tmc/venvapp/internal/system"
	"github.com/tmc/venvapp/internal/venv"
)

// Process is the state a relaunch reproduces.
type Process struct {
	// Executable is the interpreter path the process was started as.
	Executable string
	// Args is the complete original argument vector, including argv[0].
	Args []string
	// Env is the environment in "KEY=value" form.
	Env []string
}

// CurrentProcess captures the running process. On darwin the argument
// vector is read from the kernel.
func CurrentProcess() (*Process, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	return &Process{
		Executable: exe,
		Args:       system.OriginalArgs(),
		Env:        os.Environ(),
	}, nil
}

// FrameworkProbe reports whether the interpreter at executable can run from
// inside an app bundle.
type FrameworkProbe func(executable string) (bool, error)

// DefaultFrameworkProbe inspects the environment containing executable: its
// pyvenv.cfg home and the real path of the interpreter.
func DefaultFrameworkProbe(executable string) (bool, error) {
	ok, _, err := frameworkBuild(executable)
	return ok, err
}

// frameworkBuild is DefaultFrameworkProbe that also returns the path that
// decided, or what was checked when nothing did.
func frameworkBuild(executable string) (ok bool, reason string, err error) {
	abs, err := filepath.Abs(executable)
	if err != nil {
		return false, "", err
	}
	root := filepath.Dir(filepath.Dir(abs))
	if ok, reason := venv.IsFrameworkBuild(root, abs); ok {
		return true, reason, nil
	}
	return false, "no .framework directory in " + filepath.Join(root, venv.ConfigFile) + " or the real path of " + abs, nil
}

// Option configures the bundle operations.
type Option func(*options)

type options struct {
	bundleID string
	darkMode bool
	proc     *Process
	probe    FrameworkProbe
	exec     launch.ExecFunc
	launcher string
	logger   *slog.Logger
}

// WithBundleID sets the bundle identifier used when a bundle is created.
// The default is org.python.virtualenv.<name>, or $VENVAPP_BUNDLE_ID.
func WithBundleID(bundleID string) Option {
	return func(o *options) { o.bundleID = bundleID }
}

// WithDarkModeSupport lets the bundle follow the system appearance.
func WithDarkModeSupport(enabled bool) Option {
	return func(o *options) { o.darkMode = enabled }
}

// WithProcess supplies the process state instead of CurrentProcess.
func WithProcess(p *Process) Option {
	return func(o *options) { o.proc = p }
}

// WithFrameworkProbe replaces DefaultFrameworkProbe.
func WithFrameworkProbe(probe FrameworkProbe) Option {
	return func(o *options) { o.probe = probe }
}

// WithExecFunc replaces the process replacement primitive.
func WithExecFunc(exec launch.ExecFunc) Option {
	return func(o *options) { o.exec = exec }
}

// WithLauncher sets the venvapp executable the site-packages hook runs.
func WithLauncher(path string) Option {
	return func(o *options) { o.launcher = path }
}

// WithLogger sets the logger. The default is the logger in the context
// passed to the operation, or slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(ctx context.Context, opts []Option) *options {
	o := &options{
		bundleID: system.GetString(system.EnvBundleID, ""),
		darkMode: system.GetBool(system.EnvDarkMode),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slogctx.FromCtx(ctx)
	}
	return o
}

// frameworkBuild runs the configured probe, or the default one with its
// reason logged.
func (o *options) frameworkBuild(ctx context.Context, executable string) (bool, error) {
	if o.probe != nil {
		return o.probe(executable)
	}
	ok, reason, err := frameworkBuild(executable)
	o.logger.DebugContext(ctx, "framework check", "executable", executable, "framework", ok, "reason", reason)
	return ok, err
}

func (o *options) process() (*Process, error) {
	if o.proc != nil {
		return o.proc, nil
	}
	p, err := CurrentProcess()
	if err != nil {
		return nil, err
	}
	o.proc = p
	return p, nil
}

// RequireBundle makes sure the process runs from its environment's bundle.
// It returns nil when it already does. Otherwise it builds the bundle if
// needed and relaunches through it; with the default exec it returns only
// on failure.
func RequireBundle(ctx context.Context, opts ...Option) error {
	o := newOptions(ctx, opts)
	exe, err := prepare(ctx, o)
	if errors.Is(err, ErrNoActionNeeded) {
		o.logger.DebugContext(ctx, "already running from a bundle")
		return nil
	}
	if err != nil {
		return err
	}
	return relaunch(ctx, o, exe)
}

// PrepareBundle decides whether a relaunch is needed and builds the bundle
// when it is. It returns the bundle executable path, or an error wrapping
// ErrNoActionNeeded when the process already runs from a bundle. The
// checks run in order: bundle-likeness, the relaunch marker, the framework
// probe, virtual environment validation, then that the executable is the
// environment's interpreter. A failure to capture the process carries no
// sentinel kind.
func PrepareBundle(ctx context.Context, opts ...Option) (string, error) {
	return prepare(ctx, newOptions(ctx, opts))
}

func prepare(ctx context.Context, o *options) (string, error) {
	proc, err := o.process()
	if err != nil {
		return "", &Error{Op: "prepare", Err: err}
	}

	if LooksBundlelike(proc.Executable) {
		return "", &Error{Op: "prepare", Kind: ErrNoActionNeeded, Path: proc.Executable}
	}
	if _, ok := system.LookupEnv(proc.Env, system.EnvRelaunchMarker); ok {
		return "", newError("prepare", ErrAlreadyAttempted, proc.Executable, nil)
	}

	if system.EnvBool(proc.Env, system.EnvAssumeFramework) {
		o.logger.DebugContext(ctx, "framework check skipped", "var", system.EnvAssumeFramework)
	} else {
		ok, err := o.frameworkBuild(ctx, proc.Executable)
		if err != nil {
			return "", newError("prepare", ErrNotAFrameworkBuild, proc.Executable, err)
		}
		if !ok {
			return "", newError("prepare", ErrNotAFrameworkBuild, proc.Executable, nil)
		}
	}

	env, err := CurrentVirtualEnvironment(proc.Executable)
	if err != nil {
		return "", err
	}
	if !sameInterpreter(proc.Executable, env.Root) {
		return "", &Error{
			Op:   "prepare",
			Kind: ErrNotAVirtualEnvironment,
			Path: proc.Executable,
			Err:  fmt.Errorf("%s: %w", proc.Executable, ErrNotInterpreter),
			Help: "run the environment's bin/python, or pass scripts to it as arguments",
		}
	}
	return appify(ctx, o, env.Root)
}

// sameInterpreter reports whether executable is the file the bin/python of
// the environment at root refers to. A bin/python that cannot be followed
// is left for appify to report.
func sameInterpreter(executable, root string) bool {
	want, err := os.Stat(filepath.Join(root, "bin", "python"))
	if err != nil {
		return true
	}
	got, err := os.Stat(executable)
	return err == nil && os.SameFile(got, want)
}
