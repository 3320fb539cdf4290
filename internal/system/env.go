package system

import (
	"os"
	"strings"
)

// Environment variable constants for venvapp
const (
	// EnvRelaunchMarker is set in the environment handed to a relaunched
	// interpreter. A second relaunch attempt in the same process lineage
	// fails instead of looping.
	EnvRelaunchMarker = "ALREADY_TRIED_APPIFY"

	// Core configuration
	EnvBundleID        = "VENVAPP_BUNDLE_ID"
	EnvDarkMode        = "VENVAPP_DARK_MODE"
	EnvAssumeFramework = "VENVAPP_ASSUME_FRAMEWORK"

	// Logging
	EnvDebug   = "VENVAPP_DEBUG"
	EnvLogJSON = "VENVAPP_LOG_JSON"
	EnvNoColor = "VENVAPP_NO_COLOR"

	// EnvVirtualEnv is exported by a virtual environment's activate script.
	EnvVirtualEnv = "VIRTUAL_ENV"
)

// GetBool returns the boolean value of an environment variable.
// Returns true if the variable is set to "1", "true", "yes", or "on" (case-insensitive).
// Returns false otherwise.
func GetBool(key string) bool {
	return truthy(os.Getenv(key))
}

// GetString returns the string value of an environment variable.
// Returns the defaultValue if the variable is not set or empty.
func GetString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDebugEnabled checks if debug mode is enabled via environment variable.
func IsDebugEnabled() bool {
	return GetBool(EnvDebug)
}

// LookupEnv finds key in an environment slice of "KEY=value" entries.
// The last entry wins, matching how exec resolves duplicates.
func LookupEnv(env []string, key string) (string, bool) {
	prefix := key + "="
	value, found := "", false
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			value, found = kv[len(prefix):], true
		}
	}
	return value, found
}

// EnvBool reports whether key is set to a truthy value in env.
func EnvBool(env []string, key string) bool {
	value, ok := LookupEnv(env, key)
	return ok && truthy(value)
}

// SetEnv returns a copy of env with every entry for key removed and
// key=value appended. The input slice is not modified.
func SetEnv(env []string, key, value string) []string {
	prefix := key + "="
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return append(out, prefix+value)
}

// AllEnvVars returns a list of all known venvapp environment variables.
func AllEnvVars() []string {
	return []string{
		EnvRelaunchMarker,
		EnvBundleID,
		EnvDarkMode,
		EnvAssumeFramework,
		EnvDebug,
		EnvLogJSON,
		EnvNoColor,
	}
}

func truthy(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}
