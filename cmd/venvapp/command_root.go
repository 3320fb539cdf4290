package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmc/venvapp/internal/launch"
	"github.com/tmc/venvapp/internal/logging"
	"github.com/tmc/venvapp/internal/system"
)

// execFunc replaces the process in run; tests substitute it.
var execFunc launch.ExecFunc = launch.Exec

func NewRootCmd() *cobra.Command {
	var (
		debug   bool
		logJSON bool
	)

	root := &cobra.Command{
		Use:           "venvapp",
		Short:         "Run a Python virtual environment as a macOS app bundle",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts := logging.FromEnv()
			opts.Debug = opts.Debug || debug
			opts.JSON = opts.JSON || logJSON
			cmd.SetContext(logging.Setup(cmd.Context(), cmd.ErrOrStderr(), opts))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log in JSON format")

	root.AddCommand(newAppifyCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newInstallHookCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// envDirArg returns the environment directory argument, defaulting to the
// active virtual environment.
func envDirArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if dir := os.Getenv(system.EnvVirtualEnv); dir != "" {
		return dir, nil
	}
	return "", fmt.Errorf("no environment directory given and %s is not set", system.EnvVirtualEnv)
}
