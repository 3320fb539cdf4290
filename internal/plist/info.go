// Package plist reads and writes the Info.plist metadata descriptor of a
// virtual environment's app bundle.
package plist

import (
	"fmt"
	"os"

	"howett.net/plist"

	"github.com/tmc/venvapp/internal/system"
)

// Fixed Info.plist values.
const (
	PackageTypeApplication = "APPL"
	InfoDictionaryVersion  = "6.0"
	DevelopmentRegion      = "English"
	NotificationAlertStyle = "alert"
)

// Info is the Info.plist dictionary written into a bundle.
type Info struct {
	CFBundleExecutable             string `plist:"CFBundleExecutable"`
	NSUserNotificationAlertStyle   string `plist:"NSUserNotificationAlertStyle"`
	CFBundleIdentifier             string `plist:"CFBundleIdentifier"`
	CFBundleName                   string `plist:"CFBundleName"`
	CFBundlePackageType            string `plist:"CFBundlePackageType"`
	NSAppleScriptEnabled           bool   `plist:"NSAppleScriptEnabled"`
	CFBundleInfoDictionaryVersion  string `plist:"CFBundleInfoDictionaryVersion"`
	NSHighResolutionCapable        bool   `plist:"NSHighResolutionCapable"`
	CFBundleDevelopmentRegion      string `plist:"CFBundleDevelopmentRegion"`
	NSRequiresAquaSystemAppearance *bool  `plist:"NSRequiresAquaSystemAppearance,omitempty"`
}

// InfoPlistConfig holds configuration for generating Info.plist files.
type InfoPlistConfig struct {
	AppName  string
	BundleID string
	ExecName string

	// DarkMode adds NSRequiresAquaSystemAppearance=false so the app follows
	// the system appearance.
	DarkMode bool
}

// NewInfo builds the Info dictionary for cfg.
func NewInfo(cfg InfoPlistConfig) Info {
	info := Info{
		CFBundleExecutable:            cfg.ExecName,
		NSUserNotificationAlertStyle:  NotificationAlertStyle,
		CFBundleIdentifier:            cfg.BundleID,
		CFBundleName:                  cfg.AppName,
		CFBundlePackageType:           PackageTypeApplication,
		NSAppleScriptEnabled:          true,
		CFBundleInfoDictionaryVersion: InfoDictionaryVersion,
		NSHighResolutionCapable:       true,
		CFBundleDevelopmentRegion:     DevelopmentRegion,
	}
	if cfg.DarkMode {
		requiresAqua := false
		info.NSRequiresAquaSystemAppearance = &requiresAqua
	}
	return info
}

// WriteInfoPlist writes an XML Info.plist for cfg at path.
func WriteInfoPlist(path string, cfg InfoPlistConfig) error {
	if err := validateInfoPlistConfig(cfg); err != nil {
		return fmt.Errorf("invalid info plist config: %w", err)
	}

	data, err := Marshal(NewInfo(cfg))
	if err != nil {
		return err
	}
	return system.SafeWriteFile(path, data, 0644)
}

// Marshal encodes info as an indented XML property list.
func Marshal(info Info) ([]byte, error) {
	data, err := plist.MarshalIndent(info, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("encode Info.plist: %w", err)
	}
	return data, nil
}

// ReadInfoPlist decodes the Info.plist at path. Any property list format
// is accepted.
func ReadInfoPlist(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var info Info
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &info, nil
}

// validateInfoPlistConfig validates the configuration for Info.plist generation.
func validateInfoPlistConfig(cfg InfoPlistConfig) error {
	if cfg.AppName == "" {
		return fmt.Errorf("app name is required")
	}
	if cfg.BundleID == "" {
		return fmt.Errorf("bundle ID is required")
	}
	if cfg.ExecName == "" {
		return fmt.Errorf("executable name is required")
	}
	return nil
}
