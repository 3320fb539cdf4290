package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasBundleComponent(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/Applications/Foo.app/Contents/MacOS/foo", true},
		{"/Library/Frameworks/Python.framework/Versions/3.11/bin/python3", true},
		{"/usr/local/bin/python3", false},
		{"/tmp/env/bin/env.app", false},
		{"/tmp/.app/python", false},
		{"/tmp/appdir/python", false},
		{"relative/Thing.app/Contents/MacOS/python", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := HasBundleComponent(tt.path); got != tt.want {
				t.Errorf("HasBundleComponent(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadLink(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "python3.9")
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmpDir, "python")
	if err := os.Symlink("python3.9", link); err != nil {
		t.Fatal(err)
	}

	got, ok, err := ReadLink(link)
	if err != nil || !ok {
		t.Fatalf("ReadLink(link) = %q, %v, %v", got, ok, err)
	}
	if got != target {
		t.Errorf("ReadLink(link) = %q, want %q", got, target)
	}

	got, ok, err = ReadLink(target)
	if err != nil || ok || got != target {
		t.Errorf("ReadLink(regular) = %q, %v, %v; want path back, not a link", got, ok, err)
	}

	if _, _, err := ReadLink(filepath.Join(tmpDir, "missing")); err == nil {
		t.Error("ReadLink(missing) expected error")
	}
}

func TestFollowLinksTerminatesOnCycle(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a")
	b := filepath.Join(tmpDir, "b")
	if err := os.Symlink(b, a); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(a, b); err != nil {
		t.Fatal(err)
	}

	visits := 0
	found := FollowLinks(a, func(string) bool {
		visits++
		return false
	})
	if found {
		t.Error("FollowLinks() on a cycle returned true")
	}
	if visits != MaxSymlinkHops+1 {
		t.Errorf("FollowLinks() visited %d paths, want %d", visits, MaxSymlinkHops+1)
	}
}

func TestSafeWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Info.plist")

	if err := SafeWriteFile(path, []byte("first"), 0644); err != nil {
		t.Fatalf("SafeWriteFile() error = %v", err)
	}
	if err := SafeWriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatalf("SafeWriteFile() overwrite error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	if err := SafeWriteFile("", []byte("x"), 0644); err == nil {
		t.Error("SafeWriteFile(\"\") expected error")
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	dangling := filepath.Join(tmpDir, "dangling")
	if err := os.Symlink(filepath.Join(tmpDir, "nowhere"), dangling); err != nil {
		t.Fatal(err)
	}

	if !Exists(dangling) {
		t.Error("Exists(dangling symlink) = false, want true")
	}
	if FileExists(dangling) {
		t.Error("FileExists(dangling symlink) = true, want false")
	}
	if !DirExists(tmpDir) {
		t.Error("DirExists(tmpDir) = false")
	}
	if Exists(filepath.Join(tmpDir, "nothing")) {
		t.Error("Exists(missing) = true")
	}
}

func TestIsExecutable(t *testing.T) {
	tmpDir := t.TempDir()
	exe := filepath.Join(tmpDir, "exe")
	plain := filepath.Join(tmpDir, "plain")
	if err := os.WriteFile(exe, nil, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(plain, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !IsExecutable(exe) {
		t.Error("IsExecutable(0755) = false")
	}
	if os.Getuid() != 0 && IsExecutable(plain) {
		t.Error("IsExecutable(0644) = true")
	}
}

func TestBundlePaths(t *testing.T) {
	bundle := "/tmp/env1/bin/env1.app"
	if got := GetBundleContentsPath(bundle); got != "/tmp/env1/bin/env1.app/Contents" {
		t.Errorf("GetBundleContentsPath() = %q", got)
	}
	if got := GetBundleExecutablePath(bundle, "python"); got != "/tmp/env1/bin/env1.app/Contents/MacOS/python" {
		t.Errorf("GetBundleExecutablePath() = %q", got)
	}
	if got := GetBundleInfoPlistPath(bundle); got != "/tmp/env1/bin/env1.app/Contents/Info.plist" {
		t.Errorf("GetBundleInfoPlistPath() = %q", got)
	}
}
