package main

import (
	"fmt"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	"github.com/tmc/venvapp"
)

func newInstallHookCmd() *cobra.Command {
	var (
		launcher string
		remove   bool
	)

	cmd := &cobra.Command{
		Use:   "install-hook [ENVDIR]",
		Short: "Make every interpreter start in an environment use its app bundle",
		Long: `Write ` + venvapp.HookFile + ` into each site-packages directory of ENVDIR. On
interpreter start it runs "venvapp run --fallback" with the original
arguments. ENVDIR defaults to $VIRTUAL_ENV.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envDir, err := envDirArg(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			opts := []venvapp.Option{venvapp.WithLogger(slogctx.FromCtx(ctx))}

			var paths []string
			if remove {
				paths, err = venvapp.RemoveHook(ctx, envDir, opts...)
			} else {
				if launcher != "" {
					opts = append(opts, venvapp.WithLauncher(launcher))
				}
				paths, err = venvapp.InstallHook(ctx, envDir, opts...)
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&launcher, "launcher", "", "venvapp executable the hook runs (default: this executable)")
	cmd.Flags().BoolVar(&remove, "remove", false, "remove the hook instead")
	return cmd
}
