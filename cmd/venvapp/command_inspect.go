package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmc/venvapp"
	"github.com/tmc/venvapp/internal/bundle"
	"github.com/tmc/venvapp/internal/system"
	"github.com/tmc/venvapp/internal/venv"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [PATH]",
		Short: "Report what venvapp would do for an environment or interpreter",
		Long: `Inspect PATH, a virtual environment directory or an interpreter inside
one. PATH defaults to $VIRTUAL_ENV.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := envDirArg(args)
			if err != nil {
				return err
			}
			return inspect(cmd.OutOrStdout(), path)
		},
	}
}

func inspect(w io.Writer, path string) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	interpreter := path
	if system.DirExists(path) {
		interpreter = filepath.Join(path, "bin", "python")
	}
	root := filepath.Dir(filepath.Dir(interpreter))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "interpreter:\t%s\n", interpreter)
	fmt.Fprintf(tw, "bundle-like:\t%t\n", venvapp.LooksBundlelike(interpreter))

	if _, err := venvapp.CurrentVirtualEnvironment(interpreter); err != nil {
		fmt.Fprintf(tw, "environment:\t%s (invalid: %v)\n", root, err)
	} else {
		fmt.Fprintf(tw, "environment:\t%s\n", root)
	}

	if cfg, err := venv.ReadConfig(root); err == nil {
		fmt.Fprintf(tw, "python:\t%s (home %s)\n", cfg.Version, cfg.Home)
		fmt.Fprintf(tw, "system site-packages:\t%t\n", cfg.IncludeSystemSitePackages)
	}

	if ok, reason := venv.IsFrameworkBuild(root, interpreter); ok {
		fmt.Fprintf(tw, "framework build:\ttrue (%s)\n", reason)
	} else {
		fmt.Fprintf(tw, "framework build:\tfalse\n")
	}

	for _, key := range system.AllEnvVars() {
		if value, ok := os.LookupEnv(key); ok {
			fmt.Fprintf(tw, "%s:\t%s\n", key, value)
		}
	}

	l := bundle.NewLayout(root)
	if !l.Exists() {
		fmt.Fprintf(tw, "bundle:\t%s (absent)\n", l.Path)
		return tw.Flush()
	}
	fmt.Fprintf(tw, "bundle:\t%s\n", l.Path)
	if target, err := os.Readlink(l.Executable); err == nil {
		fmt.Fprintf(tw, "bundle executable:\t%s -> %s\n", l.Executable, target)
	}
	if err := l.Validate(); err != nil {
		fmt.Fprintf(tw, "bundle problem:\t%v\n", err)
	}
	if id, err := l.BundleID(); err == nil {
		fmt.Fprintf(tw, "bundle id:\t%s\n", id)
	}
	return tw.Flush()
}
