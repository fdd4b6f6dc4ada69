// Package clipboard wraps the system clipboard behind a small interface so
// callers can be tested without touching the host clipboard.
package clipboard

import (
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/matzehuels/fontdeck/pkg/errors"
)

// Writer copies text to a clipboard.
type Writer interface {
	Write(text string) error
}

// System writes to the host clipboard via platform utilities
// (pbcopy, xclip/xsel, clip.exe).
type System struct{}

// NewSystem returns a Writer backed by the host clipboard.
func NewSystem() *System {
	return &System{}
}

// Write copies text to the system clipboard. It fails with
// ErrCodeClipboardUnavailable when no clipboard utility is present, for
// example on a headless Linux box without xclip or xsel.
func (s *System) Write(text string) error {
	if clipboard.Unsupported {
		return errors.New(errors.ErrCodeClipboardUnavailable, "clipboard not supported on %s", runtime.GOOS)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(errors.ErrCodeClipboardUnavailable, err, "write clipboard")
	}
	return nil
}
