// Package bundle provides macOS app bundle creation for Python virtual
// environments. A bundle lives inside the environment's bin directory and
// its executable is a symlink to the environment's real interpreter.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmc/venvapp/internal/plist"
	"github.com/tmc/venvapp/internal/system"
)

// ExecName is the name of the bundle executable, as recorded in
// CFBundleExecutable.
const ExecName = "python"

// DefaultBundleIDPrefix namespaces default bundle identifiers.
const DefaultBundleIDPrefix = "org.python.virtualenv."

// DefaultBundleID returns the bundle identifier used when none is given.
func DefaultBundleID(envName string) string {
	return DefaultBundleIDPrefix + envName
}

// Layout is the fixed on-disk shape of an environment's bundle.
type Layout struct {
	// EnvDir is the virtual environment root.
	EnvDir string
	// Name is the environment name, the base name of EnvDir.
	Name string
	// Path is the .app directory: <EnvDir>/bin/<Name>.app
	Path string
	// Contents is <Path>/Contents
	Contents string
	// MacOS is <Path>/Contents/MacOS
	MacOS string
	// InfoPlist is <Path>/Contents/Info.plist
	InfoPlist string
	// Executable is <Path>/Contents/MacOS/python
	Executable string
}

// NewLayout computes the bundle layout for the environment rooted at envDir.
func NewLayout(envDir string) Layout {
	envDir = filepath.Clean(envDir)
	name := filepath.Base(envDir)
	path := filepath.Join(envDir, "bin", name+".app")
	return Layout{
		EnvDir:     envDir,
		Name:       name,
		Path:       path,
		Contents:   system.GetBundleContentsPath(path),
		MacOS:      filepath.Join(system.GetBundleContentsPath(path), "MacOS"),
		InfoPlist:  system.GetBundleInfoPlistPath(path),
		Executable: system.GetBundleExecutablePath(path, ExecName),
	}
}

// Interpreter returns the environment's python entry point, the link the
// bundle executable is derived from.
func (l Layout) Interpreter() string {
	return filepath.Join(l.EnvDir, "bin", "python")
}

// Exists reports whether the bundle executable is present. A dangling link
// counts: the bundle was built and must not be rebuilt over.
func (l Layout) Exists() bool {
	return system.Exists(l.Executable)
}

// Config holds the metadata options for a new bundle.
type Config struct {
	// BundleID overrides DefaultBundleID(Name).
	BundleID string

	// DarkMode writes NSRequiresAquaSystemAppearance=false.
	DarkMode bool
}

// Step names the filesystem operation a CreateError came from.
type Step string

const (
	StepMkdir   Step = "create bundle directories"
	StepPlist   Step = "write Info.plist"
	StepSymlink Step = "link interpreter"
)

// CreateError reports a failed filesystem operation during Create.
type CreateError struct {
	Step Step
	Path string
	Err  error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// RelinkError reports an interpreter link that resolves outside the
// environment's bin directory.
type RelinkError struct {
	Link     string
	Target   string
	Expected string
}

func (e *RelinkError) Error() string {
	return fmt.Sprintf("%s resolves to %s, outside %s", e.Link, e.Target, e.Expected)
}

// ResolveInterpreter returns the real path of the environment's python
// link. The real interpreter must live in the environment's own bin
// directory; anything else (typically a system interpreter) yields a
// *RelinkError. Both sides are compared with symlinks resolved.
func (l Layout) ResolveInterpreter() (string, error) {
	link := l.Interpreter()
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		return "", err
	}
	binDir, err := filepath.EvalSymlinks(filepath.Dir(link))
	if err != nil {
		return "", err
	}
	if filepath.Dir(target) != binDir {
		return "", &RelinkError{Link: link, Target: target, Expected: binDir}
	}
	return target, nil
}

// Create materializes the bundle: the directory tree, Info.plist, and the
// executable symlink pointing at target. Failures are *CreateError.
func Create(l Layout, target string, cfg Config) error {
	if err := os.MkdirAll(l.MacOS, 0755); err != nil {
		return &CreateError{Step: StepMkdir, Path: l.MacOS, Err: err}
	}

	bundleID := cfg.BundleID
	if bundleID == "" {
		bundleID = DefaultBundleID(l.Name)
	}
	infoCfg := plist.InfoPlistConfig{
		AppName:  l.Name,
		BundleID: bundleID,
		ExecName: ExecName,
		DarkMode: cfg.DarkMode,
	}
	if err := plist.WriteInfoPlist(l.InfoPlist, infoCfg); err != nil {
		return &CreateError{Step: StepPlist, Path: l.InfoPlist, Err: err}
	}

	if err := os.Symlink(target, l.Executable); err != nil {
		return &CreateError{Step: StepSymlink, Path: l.Executable, Err: err}
	}
	return nil
}

// Validate checks if the bundle is properly formed.
func (l Layout) Validate() error {
	for _, path := range []string{l.Contents, l.MacOS, l.InfoPlist} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("required bundle component missing: %s", path)
		}
	}
	info, err := os.Lstat(l.Executable)
	if err != nil {
		return fmt.Errorf("required bundle component missing: %s", l.Executable)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("bundle executable is not a symlink: %s", l.Executable)
	}
	if !system.IsExecutable(l.Executable) {
		return fmt.Errorf("bundle executable target is not executable: %s", l.Executable)
	}
	return nil
}

// BundleID returns the identifier recorded in the bundle's Info.plist.
func (l Layout) BundleID() (string, error) {
	info, err := plist.ReadInfoPlist(l.InfoPlist)
	if err != nil {
		return "", err
	}
	return info.CFBundleIdentifier, nil
}
