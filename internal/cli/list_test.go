package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/fontdeck/pkg/errors"
)

func TestFontSources(t *testing.T) {
	base := []string{"Arial", "Verdana"}
	user := []string{"Inter", "Arial"}

	sources := fontSources(base, user)

	tests := []struct {
		font string
		want string
	}{
		{"Arial", "built-in, pasted"},
		{"Verdana", "built-in"},
		{"Inter", "pasted"},
	}
	for _, tt := range tests {
		if got := sources[tt.font]; got != tt.want {
			t.Errorf("source[%q] = %q, want %q", tt.font, got, tt.want)
		}
	}
}

func TestReadFontList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.txt")
	if err := os.WriteFile(path, []byte("Inter\nArial"), 0o644); err != nil {
		t.Fatal(err)
	}

	raw, err := readFontList(path)
	if err != nil {
		t.Fatal(err)
	}
	if raw != "Inter\nArial" {
		t.Errorf("readFontList = %q", raw)
	}
}

func TestReadFontListMissingFile(t *testing.T) {
	_, err := readFontList(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
