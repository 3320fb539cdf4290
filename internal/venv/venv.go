// Package venv inspects Python virtual environments on disk.
package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Members every virtual environment has, in the order they are checked.
var RequiredMembers = []string{
	"bin/activate",
	"bin/python",
	"bin/pip",
	"include",
	"lib",
}

// Environment is a validated virtual environment.
type Environment struct {
	// Root is the environment directory, the parent of bin.
	Root string

	// Name is the base name of Root.
	Name string
}

// MissingError reports a required member absent from a candidate environment.
type MissingError struct {
	Root   string
	Member string
	Path   string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s is missing %s (checked %s)", e.Root, e.Member, e.Path)
}

// FromExecutable derives the environment that contains executable, which is
// expected to live directly in the environment's bin directory.
func FromExecutable(executable string) (*Environment, error) {
	abs, err := filepath.Abs(executable)
	if err != nil {
		return nil, err
	}
	return Open(filepath.Dir(filepath.Dir(abs)))
}

// Open validates root as a virtual environment. The first missing member is
// reported as a *MissingError.
func Open(root string) (*Environment, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	for _, member := range RequiredMembers {
		path := filepath.Join(root, filepath.FromSlash(member))
		if _, err := os.Lstat(path); err != nil {
			return nil, &MissingError{Root: root, Member: member, Path: path}
		}
	}
	return &Environment{Root: root, Name: filepath.Base(root)}, nil
}

// SitePackages returns the site-packages directories under lib, sorted.
func (e *Environment) SitePackages() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(e.Root, "lib", "python*", "site-packages"))
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			dirs = append(dirs, m)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
