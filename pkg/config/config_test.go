package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/fontdeck/pkg/errors"
	"github.com/matzehuels/fontdeck/pkg/preview"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
sample_text = "Grumpy wizards make toxic brew"
columns = 4
fonts = ["Inter", "JetBrains Mono"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SampleText != "Grumpy wizards make toxic brew" {
		t.Errorf("SampleText = %q", cfg.SampleText)
	}
	if cfg.Columns != 4 {
		t.Errorf("Columns = %d, want 4", cfg.Columns)
	}
	if !reflect.DeepEqual(cfg.Fonts, []string{"Inter", "JetBrains Mono"}) {
		t.Errorf("Fonts = %v", cfg.Fonts)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `fonts = ["Inter"]`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SampleText != preview.DefaultSampleText {
		t.Errorf("SampleText = %q, want default", cfg.SampleText)
	}
	if cfg.Columns != preview.DefaultColumns {
		t.Errorf("Columns = %d, want default", cfg.Columns)
	}
}

func TestLoadRejectsOutOfRangeColumns(t *testing.T) {
	path := writeConfig(t, `columns = 9`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Columns != preview.DefaultColumns {
		t.Errorf("Columns = %d, want default for out-of-range value", cfg.Columns)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeConfig(t, `columns = [not toml`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	dir, err := configDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("configDir = %q", dir)
	}
}
