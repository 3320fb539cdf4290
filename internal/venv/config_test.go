package venv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name: "venv module",
			content: "home = /Library/Frameworks/Python.framework/Versions/3.11/bin\n" +
				"include-system-site-packages = false\n" +
				"version = 3.11.4\n" +
				"executable = /Library/Frameworks/Python.framework/Versions/3.11/bin/python3.11\n" +
				"command = /usr/local/bin/python3 -m venv /tmp/env1\n",
			want: Config{
				Home:       "/Library/Frameworks/Python.framework/Versions/3.11/bin",
				Version:    "3.11.4",
				Executable: "/Library/Frameworks/Python.framework/Versions/3.11/bin/python3.11",
			},
		},
		{
			name: "virtualenv",
			content: "home = /usr/bin\n" +
				"implementation = CPython\n" +
				"version_info = 3.9.6.final.0\n" +
				"virtualenv = 20.24.5\n" +
				"include-system-site-packages = true\n" +
				"base-prefix = /usr\n",
			want: Config{
				Home:                      "/usr/bin",
				Version:                   "3.9.6.final.0",
				IncludeSystemSitePackages: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			cfg, err := ReadConfig(root)
			if err != nil {
				t.Fatalf("ReadConfig() error = %v", err)
			}
			if *cfg != tt.want {
				t.Errorf("ReadConfig() = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestReadConfigMissing(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); !os.IsNotExist(err) {
		t.Errorf("ReadConfig() error = %v, want not-exist", err)
	}
}

func TestIsFrameworkBuild(t *testing.T) {
	t.Run("pyvenv home inside framework", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, "home = /Library/Frameworks/Python.framework/Versions/3.11/bin\n")

		ok, reason := IsFrameworkBuild(root, "")
		if !ok || !strings.Contains(reason, "Python.framework") {
			t.Errorf("IsFrameworkBuild() = %v, %q", ok, reason)
		}
	})

	t.Run("interpreter resolves into framework", func(t *testing.T) {
		tmp := t.TempDir()
		frameworkBin := filepath.Join(tmp, "Python.framework", "Versions", "3.11", "bin")
		if err := os.MkdirAll(frameworkBin, 0755); err != nil {
			t.Fatal(err)
		}
		real := filepath.Join(frameworkBin, "python3.11")
		if err := os.WriteFile(real, nil, 0755); err != nil {
			t.Fatal(err)
		}
		root := filepath.Join(tmp, "env")
		if err := os.MkdirAll(filepath.Join(root, "bin"), 0755); err != nil {
			t.Fatal(err)
		}
		link := filepath.Join(root, "bin", "python")
		if err := os.Symlink(real, link); err != nil {
			t.Fatal(err)
		}

		ok, reason := IsFrameworkBuild(root, link)
		if !ok || !strings.Contains(reason, "Python.framework") {
			t.Errorf("IsFrameworkBuild() = %v, %q", ok, reason)
		}
	})

	t.Run("plain build", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, "home = /usr/bin\n")

		if ok, reason := IsFrameworkBuild(root, filepath.Join(root, "bin", "python3")); ok || reason != "" {
			t.Errorf("IsFrameworkBuild() = %v, %q, want false", ok, reason)
		}
	})

	t.Run("no config and no interpreter", func(t *testing.T) {
		if ok, _ := IsFrameworkBuild(t.TempDir(), ""); ok {
			t.Error("IsFrameworkBuild() = true for an empty directory")
		}
	})
}
