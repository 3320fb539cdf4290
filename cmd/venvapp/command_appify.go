package main

import (
	"fmt"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	"github.com/tmc/venvapp"
)

func newAppifyCmd() *cobra.Command {
	var (
		bundleID string
		darkMode bool
	)

	cmd := &cobra.Command{
		Use:   "appify [ENVDIR]",
		Short: "Build the app bundle for a virtual environment",
		Long: `Build <ENVDIR>/bin/<name>.app around the environment's interpreter and
print the bundle executable path. ENVDIR defaults to $VIRTUAL_ENV. An
existing bundle is left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envDir, err := envDirArg(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			opts := []venvapp.Option{venvapp.WithLogger(slogctx.FromCtx(ctx))}
			if bundleID != "" {
				opts = append(opts, venvapp.WithBundleID(bundleID))
			}
			if cmd.Flags().Changed("dark-mode") {
				opts = append(opts, venvapp.WithDarkModeSupport(darkMode))
			}

			exe, err := venvapp.AppifyEnvironment(ctx, envDir, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), exe)
			return nil
		},
	}
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "bundle identifier (default org.python.virtualenv.<name>)")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "let the app follow the system appearance")
	return cmd
}
