package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestUserDir(t *testing.T) {
	base := t.TempDir()

	got := userDir(func() (string, error) { return base, nil }, ".config")
	if want := filepath.Join(base, basePrefix()); got != want {
		t.Errorf("userDir() = %q, want %q", got, want)
	}

	t.Setenv("HOME", base)

	got = userDir(func() (string, error) { return "", errors.New("unset") }, ".cache")
	if want := filepath.Join(base, ".cache", basePrefix()); got != want {
		t.Errorf("userDir() fallback = %q, want %q", got, want)
	}
}

func TestConfigPath(t *testing.T) {
	if got := configPath(); got != configDir() {
		t.Errorf("configPath() = %q, want %q", got, configDir())
	}

	got := configPath(baseConfig)
	if !strings.HasSuffix(got, filepath.Join(basePrefix(), "config.yaml")) {
		t.Errorf("configPath(%q) = %q", baseConfig, got)
	}
}

func TestBasePrefix(t *testing.T) {
	prefix := basePrefix()

	if prefix == "" || strings.HasPrefix(prefix, ".") {
		t.Errorf("basePrefix() = %q", prefix)
	}
}
