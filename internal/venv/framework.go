package venv

import (
	"path/filepath"
	"strings"
)

// IsFrameworkBuild reports whether the interpreter behind an environment is a
// macOS framework build, the only kind that can run from inside an app
// bundle. It consults pyvenv.cfg's home and executable first, then the real
// path of interpreter. reason names the path that decided.
func IsFrameworkBuild(root, interpreter string) (ok bool, reason string) {
	var candidates []string
	if cfg, err := ReadConfig(root); err == nil {
		candidates = append(candidates, cfg.Home, cfg.Executable)
	}
	if interpreter != "" {
		candidates = append(candidates, interpreter)
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
			candidate = resolved
		}
		if inFramework(candidate) {
			return true, candidate
		}
	}
	return false, ""
}

func inFramework(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if len(part) > len(".framework") && strings.HasSuffix(part, ".framework") {
			return true
		}
	}
	return false
}
