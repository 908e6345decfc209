package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Host = %q", cfg.Server.Host)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.Static.Dir != "public" || cfg.Static.Prefix != "/static" {
		t.Errorf("Static = %+v", cfg.Static)
	}
	if cfg.Auth.SessionTTLSeconds != 3600 {
		t.Errorf("SessionTTLSeconds = %d", cfg.Auth.SessionTTLSeconds)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:3000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rustnext.json")
	body := `{
		"name": "demo",
		"server": {"host": "0.0.0.0", "port": 8080, "compression": true},
		"static": {"dir": "assets"},
		"features": {"metrics": true}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if !cfg.Server.Compression {
		t.Error("Compression not set")
	}
	if cfg.Static.Dir != "assets" {
		t.Errorf("Static.Dir = %q", cfg.Static.Dir)
	}
	// Prefix keeps its default when the file omits it.
	if cfg.Static.Prefix != "/static" {
		t.Errorf("Static.Prefix = %q", cfg.Static.Prefix)
	}
	if !cfg.Features.Metrics {
		t.Error("Features.Metrics not set")
	}
}

func TestLoadExplicitMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a named file that does not exist")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rustnext.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RUSTNEXT_HOST", "10.1.2.3")
	t.Setenv("RUSTNEXT_PORT", "9999")
	t.Setenv("RUSTNEXT_STATIC_DIR", "www")
	t.Setenv("RUSTNEXT_JWT_SECRET", "from-env")
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "10.1.2.3:9999" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.Static.Dir != "www" {
		t.Errorf("Static.Dir = %q", cfg.Static.Dir)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
}

func TestEnvInvalidPortIgnored(t *testing.T) {
	t.Setenv("RUSTNEXT_PORT", "not-a-port")
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Port = %d, want default", cfg.Server.Port)
	}
}
