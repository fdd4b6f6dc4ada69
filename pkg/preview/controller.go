// Package preview holds the state machine behind the font preview screen.
//
// The Controller owns every piece of UI state: the sample text, the raw
// pasted font list, the grid column count, the preview visibility flag, and
// the ephemeral copy feedback message. All mutations are explicit method
// calls with synchronous state-transition rules; there are no watchers or
// implicit reactions. The visibility flag in particular follows a single
// rule: any edit to the sample text, font list, or column count hides the
// previews, and only an explicit RequestPreviews call shows them again.
// Stale previews are therefore never displayed against a newer
// configuration.
package preview

import (
	"strconv"
	"time"

	"github.com/matzehuels/fontdeck/pkg/clipboard"
	"github.com/matzehuels/fontdeck/pkg/errors"
	"github.com/matzehuels/fontdeck/pkg/fontlist"
	"github.com/matzehuels/fontdeck/pkg/scripts"
)

const (
	// DefaultSampleText is the pangram shown until the user edits it.
	DefaultSampleText = "The quick brown fox jumps over the lazy dog"

	// PlaceholderSampleText is rendered on preview cards when the sample
	// text is empty.
	PlaceholderSampleText = "(sample text is empty)"

	// DefaultColumns is the initial preview grid column count.
	DefaultColumns = 3

	// FeedbackTTL is how long a copy feedback message stays visible before
	// it self-clears.
	FeedbackTTL = 2 * time.Second
)

// Controller holds all preview screen state. It is not safe for concurrent
// use; the event loop driving it is single-threaded.
type Controller struct {
	clip clipboard.Writer
	base []string // built-in fonts plus configured extras

	sampleText  string
	rawFontList string
	userFonts   []string

	columns      int
	columnsUnset bool // column field is empty, committed value retained

	previewsShown bool

	feedback    string
	feedbackGen int
}

// Option configures a Controller.
type Option func(*Controller)

// WithSampleText sets the initial sample text.
func WithSampleText(text string) Option {
	return func(c *Controller) { c.sampleText = text }
}

// WithColumns sets the initial committed column count. Out-of-range values
// are ignored and the default is kept, matching interactive input handling.
func WithColumns(n int) Option {
	return func(c *Controller) {
		if errors.ValidateColumns(n) == nil {
			c.columns = n
		}
	}
}

// WithExtraFonts extends the built-in font set with additional names, for
// example from the user's config file. Extras take part in the same
// dedupe-and-sort union as pasted names.
func WithExtraFonts(names []string) Option {
	return func(c *Controller) {
		c.base = append(c.base, names...)
	}
}

// New creates a Controller with default state: the pangram sample text,
// three columns, previews hidden, no user fonts.
func New(clip clipboard.Writer, opts ...Option) *Controller {
	c := &Controller{
		clip:       clip,
		base:       append([]string(nil), fontlist.Builtin...),
		sampleText: DefaultSampleText,
		columns:    DefaultColumns,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSampleText replaces the sample text verbatim. No trimming or
// validation; empty text is allowed and rendered as a placeholder. Hides
// previews.
func (c *Controller) SetSampleText(text string) {
	c.sampleText = text
	c.previewsShown = false
}

// SampleText returns the current sample text.
func (c *Controller) SampleText() string {
	return c.sampleText
}

// DisplaySampleText returns the sample text, or the placeholder when it is
// empty.
func (c *Controller) DisplaySampleText() string {
	if c.sampleText == "" {
		return PlaceholderSampleText
	}
	return c.sampleText
}

// SetRawFontList replaces the raw pasted font list verbatim and re-derives
// the parsed user font names. Hides previews.
func (c *Controller) SetRawFontList(raw string) {
	c.rawFontList = raw
	c.userFonts = fontlist.Parse(raw)
	c.previewsShown = false
}

// RawFontList returns the raw pasted input.
func (c *Controller) RawFontList() string {
	return c.rawFontList
}

// UserFonts returns the parsed user font names in input order.
func (c *Controller) UserFonts() []string {
	return c.userFonts
}

// SetColumnCount handles raw column input. A value that parses as an
// integer in [1,6] is committed and hides previews. The empty string enters
// a transient unset state: nothing is committed, the prior value is
// retained, and previews stay as they are. Any other value is silently
// rejected. It reports whether a new value was committed.
func (c *Controller) SetColumnCount(raw string) bool {
	if raw == "" {
		c.columnsUnset = true
		return false
	}

	n, err := strconv.Atoi(raw)
	if err != nil || errors.ValidateColumns(n) != nil {
		return false
	}

	c.columns = n
	c.columnsUnset = false
	c.previewsShown = false
	return true
}

// ColumnCount returns the committed column count. It is always in [1,6]
// even while the input field is transiently empty.
func (c *Controller) ColumnCount() int {
	return c.columns
}

// ColumnsUnset reports whether the column field is in the transient empty
// state. The committed value is unaffected; on blur the field reverts to it.
func (c *Controller) ColumnsUnset() bool {
	return c.columnsUnset
}

// CommitColumns leaves the transient unset state, reverting the field to
// the committed value. Called when the column input loses focus.
func (c *Controller) CommitColumns() {
	c.columnsUnset = false
}

// RequestPreviews shows the preview grid. It has no failure mode.
func (c *Controller) RequestPreviews() {
	c.previewsShown = true
}

// PreviewsShown reports whether the preview grid is visible.
func (c *Controller) PreviewsShown() bool {
	return c.previewsShown
}

// AvailableFonts returns the deduplicated, sorted union of the built-in set
// (plus configured extras) and the parsed user fonts. An empty user list
// falls back to the built-in set alone.
func (c *Controller) AvailableFonts() []string {
	return fontlist.MergeInto(c.base, c.userFonts)
}

// ExportScript returns the embedded retrieval script and its fixed
// filename. The content is identical on every call; writing it out is the
// caller's job.
func (c *Controller) ExportScript() (name string, data []byte) {
	return scripts.FileName, scripts.ListFontsPS1()
}

// CopyFontName copies name to the clipboard and records a feedback message:
// a confirmation containing the name on success, a generic failure note
// otherwise. Clipboard failures go no further than the message. The
// returned generation identifies this message for ClearFeedback, so a timer
// for an older message cannot clear a newer one.
func (c *Controller) CopyFontName(name string) int {
	if err := c.clip.Write(name); err != nil {
		c.feedback = "Copy failed: " + errors.UserMessage(err)
	} else {
		c.feedback = "Copied " + strconv.Quote(name) + " to clipboard"
	}
	c.feedbackGen++
	return c.feedbackGen
}

// ClearFeedback clears the feedback message if gen matches the generation
// returned by the CopyFontName call that set it. Stale generations are
// ignored.
func (c *Controller) ClearFeedback(gen int) {
	if gen == c.feedbackGen {
		c.feedback = ""
	}
}

// Feedback returns the current copy feedback message, or "" when none is
// active.
func (c *Controller) Feedback() string {
	return c.feedback
}
