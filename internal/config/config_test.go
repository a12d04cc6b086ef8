// ABOUTME: Tests for config defaults, path handling, and env overrides.
// ABOUTME: Redirects XDG paths into temp dirs so no real config is touched.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %s, want badger", got)
	}

	cfg.Backend = "sqlite"
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %s, want sqlite", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	if got, want := DataDir(), filepath.Join(dir, "nutri"); got != want {
		t.Errorf("DataDir() = %s, want %s", got, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NUTRI_BACKEND", "sqlite")
	t.Setenv("NUTRI_DATA_DIR", "/tmp/nutri-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("Backend = %s, want sqlite", cfg.Backend)
	}
	if cfg.DataDir != "/tmp/nutri-test" {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("NUTRI_BACKEND", "")
	t.Setenv("NUTRI_DATA_DIR", "")

	dir := filepath.Join(configHome, "nutri")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"backend":"memory"}`), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != "memory" {
		t.Errorf("GetBackend() = %s, want memory from file", cfg.GetBackend())
	}

	// Env beats file.
	t.Setenv("NUTRI_BACKEND", "badger")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != "badger" {
		t.Errorf("GetBackend() = %s, want badger from env", cfg.GetBackend())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NUTRI_BACKEND", "")
	t.Setenv("NUTRI_DATA_DIR", "")

	cfg := &Config{Backend: "sqlite", DataDir: "/data/nutri"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.DataDir != "/data/nutri" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestOpenBackendUnknown(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}
	if _, err := cfg.OpenBackend("redis"); err == nil {
		t.Error("OpenBackend(redis) succeeded")
	}
}

func TestOpenBackendMemory(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}
	s, err := cfg.OpenBackend("memory")
	if err != nil {
		t.Fatalf("OpenBackend(memory) failed: %v", err)
	}
	defer s.Close()

	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := s.Get("k")
	if err != nil || string(v) != "v" {
		t.Errorf("Get = %q, %v", v, err)
	}
}
