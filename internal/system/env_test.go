package system

import (
	"reflect"
	"testing"
)

func TestGetBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  bool
	}{
		{name: "true value 1", value: "1", set: true, want: true},
		{name: "true value true", value: "true", set: true, want: true},
		{name: "true value yes", value: "yes", set: true, want: true},
		{name: "true value on", value: "on", set: true, want: true},
		{name: "true value uppercase", value: "TRUE", set: true, want: true},
		{name: "true value padded", value: " 1 ", set: true, want: true},
		{name: "false value 0", value: "0", set: true, want: false},
		{name: "false value false", value: "false", set: true, want: false},
		{name: "false value empty", value: "", set: true, want: false},
		{name: "false value random", value: "random", set: true, want: false},
		{name: "unset variable", set: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const key = "VENVAPP_TEST_BOOL"
			if tt.set {
				t.Setenv(key, tt.value)
			}
			if got := GetBool(key); got != tt.want {
				t.Errorf("GetBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetString(t *testing.T) {
	t.Setenv("VENVAPP_TEST_STRING", "  org.example.tool  ")
	if got := GetString("VENVAPP_TEST_STRING", "fallback"); got != "org.example.tool" {
		t.Errorf("GetString() = %q, want %q", got, "org.example.tool")
	}

	t.Setenv("VENVAPP_TEST_STRING", "")
	if got := GetString("VENVAPP_TEST_STRING", "fallback"); got != "fallback" {
		t.Errorf("GetString() with empty value = %q, want %q", got, "fallback")
	}
}

func TestLookupEnv(t *testing.T) {
	env := []string{"A=1", "ALREADY_TRIED_APPIFY=1", "B=", "A=2"}

	if v, ok := LookupEnv(env, "A"); !ok || v != "2" {
		t.Errorf("LookupEnv(A) = %q, %v; want last value %q", v, ok, "2")
	}
	if v, ok := LookupEnv(env, "B"); !ok || v != "" {
		t.Errorf("LookupEnv(B) = %q, %v; want empty but present", v, ok)
	}
	if _, ok := LookupEnv(env, "ALREADY"); ok {
		t.Error("LookupEnv matched a key prefix")
	}
	if !EnvBool(env, EnvRelaunchMarker) {
		t.Error("EnvBool(marker) = false, want true")
	}
	if EnvBool(env, "B") {
		t.Error("EnvBool(B) = true for empty value")
	}
}

func TestSetEnv(t *testing.T) {
	env := []string{"PATH=/usr/bin", "ALREADY_TRIED_APPIFY=0", "HOME=/Users/x", "ALREADY_TRIED_APPIFY=no"}
	orig := append([]string(nil), env...)

	got := SetEnv(env, EnvRelaunchMarker, "1")
	want := []string{"PATH=/usr/bin", "HOME=/Users/x", "ALREADY_TRIED_APPIFY=1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetEnv() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(env, orig) {
		t.Errorf("SetEnv() modified its input: %v", env)
	}
}

func TestAllEnvVars(t *testing.T) {
	seen := make(map[string]bool)
	for _, key := range AllEnvVars() {
		if seen[key] {
			t.Errorf("duplicate env var %s", key)
		}
		seen[key] = true
	}
	if !seen[EnvRelaunchMarker] {
		t.Error("relaunch marker missing from AllEnvVars")
	}
}
