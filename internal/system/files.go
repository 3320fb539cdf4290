// Package system provides internal system-level utilities for venvapp.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moby/sys/atomicwriter"
	"golang.org/x/sys/unix"
)

// MaxSymlinkHops bounds symlink chains followed by FollowLinks.
const MaxSymlinkHops = 40

// Bundle directory suffixes the OS treats as bundles.
var bundleSuffixes = []string{".app", ".framework"}

// SafeWriteFile writes data to a file atomically: readers see either the old
// content or the new content, never a partial write.
func SafeWriteFile(filename string, data []byte, perm os.FileMode) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if err := atomicwriter.WriteFile(filename, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// Exists reports whether path names anything, including a dangling symlink.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsExecutable reports whether the current user may execute path.
func IsExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

// HasBundleComponent reports whether any directory component of path ends
// in ".app" or ".framework". The final element is not considered: a bundle
// directory itself is not a path inside a bundle.
func HasBundleComponent(path string) bool {
	dir := filepath.Dir(filepath.Clean(path))
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		for _, suffix := range bundleSuffixes {
			if len(part) > len(suffix) && strings.HasSuffix(part, suffix) {
				return true
			}
		}
	}
	return false
}

// ReadLink resolves one level of symlink. ok is false when path is not a
// symlink. Relative targets are resolved against the link's directory.
func ReadLink(path string) (target string, ok bool, err error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", false, err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return path, false, nil
	}
	target, err = os.Readlink(path)
	if err != nil {
		return "", false, err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target, true, nil
}

// FollowLinks calls visit for path and for every symlink target reached from
// it, one level at a time, until visit returns true, a non-link is reached,
// or MaxSymlinkHops is exceeded. It returns whether visit ever returned true.
func FollowLinks(path string, visit func(string) bool) bool {
	for hop := 0; hop <= MaxSymlinkHops; hop++ {
		if visit(path) {
			return true
		}
		next, ok, err := ReadLink(path)
		if err != nil || !ok {
			return false
		}
		path = next
	}
	return false
}

// GetBundleContentsPath constructs the path to the Contents directory in an app bundle.
func GetBundleContentsPath(bundlePath string) string {
	return filepath.Join(bundlePath, "Contents")
}

// GetBundleExecutablePath constructs the path to the executable inside an app bundle.
func GetBundleExecutablePath(bundlePath, execName string) string {
	return filepath.Join(bundlePath, "Contents", "MacOS", execName)
}

// GetBundleInfoPlistPath constructs the path to the Info.plist in an app bundle.
func GetBundleInfoPlistPath(bundlePath string) string {
	return filepath.Join(bundlePath, "Contents", "Info.plist")
}
