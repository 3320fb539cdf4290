package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	"github.com/tmc/venvapp"
	"github.com/tmc/venvapp/internal/launch"
	"github.com/tmc/venvapp/internal/system"
)

func newRunCmd() *cobra.Command {
	var (
		bundleID string
		darkMode bool
		fallback bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- INTERPRETER [ARGS...]",
		Short: "Run an interpreter through its environment's app bundle",
		Long: `Run INTERPRETER with ARGS from inside its virtual environment's app
bundle, building the bundle on first use. An interpreter that already runs
from a bundle, and a program in the environment's bin directory that is not
its interpreter, are executed unchanged.

With --fallback, any failure to use the bundle is logged and the
interpreter is executed directly with ALREADY_TRIED_APPIFY set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := slogctx.FromCtx(ctx)

			interpreter := args[0]
			if path, err := exec.LookPath(interpreter); err == nil {
				interpreter = path
			}
			if abs, err := filepath.Abs(interpreter); err == nil {
				interpreter = abs
			}
			proc := &venvapp.Process{
				Executable: interpreter,
				Args:       args,
				Env:        os.Environ(),
			}
			direct := launch.New(execFunc, logger)

			opts := []venvapp.Option{
				venvapp.WithProcess(proc),
				venvapp.WithExecFunc(execFunc),
				venvapp.WithLogger(logger),
			}
			if bundleID != "" {
				opts = append(opts, venvapp.WithBundleID(bundleID))
			}
			if cmd.Flags().Changed("dark-mode") {
				opts = append(opts, venvapp.WithDarkModeSupport(darkMode))
			}

			exe, err := venvapp.PrepareBundle(ctx, opts...)
			switch {
			case errors.Is(err, venvapp.ErrNoActionNeeded), errors.Is(err, venvapp.ErrNotInterpreter):
				return direct.Launch(ctx, &launch.Request{Executable: interpreter, Args: args, Env: proc.Env})
			case err != nil && fallback:
				logger.WarnContext(ctx, "running without app bundle", "error", err)
				return direct.Launch(ctx, &launch.Request{
					Executable: interpreter,
					Args:       args,
					Env:        proc.Env,
					Marker:     system.EnvRelaunchMarker,
				})
			case err != nil:
				return err
			}
			return venvapp.Relaunch(ctx, exe, opts...)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "bundle identifier used if the bundle is created")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "let the app follow the system appearance")
	cmd.Flags().BoolVar(&fallback, "fallback", false, "run the interpreter directly if the bundle cannot be used")
	return cmd
}
