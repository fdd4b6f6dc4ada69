package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/fontdeck/pkg/preview"
	"github.com/matzehuels/fontdeck/pkg/scripts"
)

// Preview screen styles
var (
	labelStyle    = lipgloss.NewStyle().Foreground(colorGray)
	buttonStyle   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	buttonFocus   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(colorCyan)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	cardFocus     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorCyan).Padding(0, 1)
	cardNameStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	feedbackStyle = lipgloss.NewStyle().Foreground(colorGreen)
	howtoStyle    = lipgloss.NewStyle().Foreground(colorDim).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorDim).PaddingLeft(1)
)

// =============================================================================
// Focus Areas
// =============================================================================

// focusArea identifies which control on the preview screen has focus.
type focusArea int

const (
	focusSample focusArea = iota
	focusFonts
	focusColumns
	focusGenerate
	focusGrid
)

// =============================================================================
// Messages
// =============================================================================

// clearFeedbackMsg asks the model to clear the copy feedback message with
// the given generation. Stale generations are ignored by the controller.
type clearFeedbackMsg struct {
	gen int
}

// scriptSavedMsg reports the outcome of saving the retrieval script.
type scriptSavedMsg struct {
	path string
	err  error
}

// =============================================================================
// Key Bindings
// =============================================================================

// keyMap defines the preview screen key bindings.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Generate key.Binding
	Copy     key.Binding
	Save     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Generate: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate previews")),
		Copy:     key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter/c", "copy font name")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save helper script")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to form")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Generate, k.Copy, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Back},
		{k.Generate, k.Copy, k.Save, k.Quit},
	}
}

// =============================================================================
// PreviewModel
// =============================================================================

// PreviewModel is the bubbletea model for the font preview screen. All
// state transitions go through the preview.Controller; the model only maps
// terminal events onto controller operations and renders the result.
type PreviewModel struct {
	ctrl *preview.Controller

	sample  textinput.Model
	fonts   textarea.Model
	columns textinput.Model

	focus  focusArea
	cursor int // selected card while the grid has focus

	saveStatus string // outcome of the last script save, cleared on edits

	width  int
	height int

	keys keyMap
	help help.Model
}

// newPreviewModel creates the preview screen model wired to ctrl.
func newPreviewModel(ctrl *preview.Controller) PreviewModel {
	sample := textinput.New()
	sample.Placeholder = "Sample text"
	sample.SetValue(ctrl.SampleText())
	sample.CharLimit = 256
	sample.Width = 60
	sample.Focus()

	fonts := textarea.New()
	fonts.Placeholder = "Paste font names here, one per line or comma separated"
	fonts.SetWidth(60)
	fonts.SetHeight(5)

	columns := textinput.New()
	columns.SetValue(strconv.Itoa(ctrl.ColumnCount()))
	columns.CharLimit = 1
	columns.Width = 3

	return PreviewModel{
		ctrl:    ctrl,
		sample:  sample,
		fonts:   fonts,
		columns: columns,
		focus:   focusSample,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearFeedbackMsg:
		m.ctrl.ClearFeedback(msg.gen)
		return m, nil

	case scriptSavedMsg:
		if msg.err != nil {
			m.saveStatus = "Save failed: " + msg.err.Error()
		} else {
			m.saveStatus = "Saved " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			return m.moveFocus(1), nil

		case key.Matches(msg, m.keys.Prev):
			return m.moveFocus(-1), nil

		case key.Matches(msg, m.keys.Generate):
			return m.generate()

		case key.Matches(msg, m.keys.Save):
			return m, saveScript(m.ctrl)
		}

		if m.focus == focusGrid {
			return m.updateGrid(msg)
		}
		if m.focus == focusGenerate {
			if msg.String() == "enter" {
				return m.generate()
			}
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateInputs(msg)
	}

	return m.updateInputs(msg)
}

// generate shows the preview grid and moves focus into it. A transiently
// empty column field reverts to the committed value first.
func (m PreviewModel) generate() (tea.Model, tea.Cmd) {
	m.ctrl.CommitColumns()
	m.columns.SetValue(strconv.Itoa(m.ctrl.ColumnCount()))
	m.ctrl.RequestPreviews()
	m.focus = focusGrid
	m.cursor = 0
	m.blurAll()
	return m, nil
}

// moveFocus cycles focus across the form controls, including the grid when
// it is visible. Leaving the column field commits the transient unset state
// back to the last committed value.
func (m PreviewModel) moveFocus(dir int) PreviewModel {
	if m.focus == focusColumns {
		m.ctrl.CommitColumns()
		m.columns.SetValue(strconv.Itoa(m.ctrl.ColumnCount()))
	}

	last := focusGenerate
	if m.ctrl.PreviewsShown() {
		last = focusGrid
	}

	next := int(m.focus) + dir
	if next < 0 {
		next = int(last)
	}
	if next > int(last) {
		next = 0
	}
	m.focus = focusArea(next)

	m.blurAll()
	switch m.focus {
	case focusSample:
		m.sample.Focus()
	case focusFonts:
		m.fonts.Focus()
	case focusColumns:
		m.columns.Focus()
	}
	return m
}

func (m *PreviewModel) blurAll() {
	m.sample.Blur()
	m.fonts.Blur()
	m.columns.Blur()
}

// updateInputs forwards msg to the focused input and maps value changes
// onto controller operations.
func (m PreviewModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusSample:
		before := m.sample.Value()
		m.sample, cmd = m.sample.Update(msg)
		if v := m.sample.Value(); v != before {
			m.ctrl.SetSampleText(v)
			m.saveStatus = ""
		}

	case focusFonts:
		before := m.fonts.Value()
		m.fonts, cmd = m.fonts.Update(msg)
		if v := m.fonts.Value(); v != before {
			m.ctrl.SetRawFontList(v)
			m.saveStatus = ""
		}

	case focusColumns:
		before := m.columns.Value()
		m.columns, cmd = m.columns.Update(msg)
		if v := m.columns.Value(); v != before {
			if !m.ctrl.SetColumnCount(v) && v != "" {
				// Rejected input: restore the field to the prior value.
				m.columns.SetValue(before)
				m.columns.CursorEnd()
			}
			m.saveStatus = ""
		}
	}

	return m, cmd
}

// updateGrid handles navigation and copying while the grid has focus.
func (m PreviewModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fonts := m.ctrl.AvailableFonts()
	cols := m.ctrl.ColumnCount()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.focus = focusSample
		m.sample.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		if m.cursor < len(fonts) {
			gen := m.ctrl.CopyFontName(fonts[m.cursor])
			return m, tea.Tick(preview.FeedbackTTL, func(time.Time) tea.Msg {
				return clearFeedbackMsg{gen: gen}
			})
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(fonts)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case "down", "j":
		if m.cursor+cols < len(fonts) {
			m.cursor += cols
		}
	}
	return m, nil
}

// =============================================================================
// View
// =============================================================================

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("fontdeck"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("compare fonts with your own sample text"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Sample text"))
	b.WriteString("\n")
	b.WriteString(m.sample.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Font list"))
	b.WriteString("\n")
	b.WriteString(m.fonts.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Columns (1-6) "))
	b.WriteString(m.columns.View())
	b.WriteString("\n\n")

	label := fmt.Sprintf("Generate previews (%d fonts)", len(m.ctrl.AvailableFonts()))
	if m.focus == focusGenerate {
		b.WriteString(buttonFocus.Render(label))
	} else {
		b.WriteString(buttonStyle.Render(label))
	}
	b.WriteString("\n\n")

	b.WriteString(m.howtoView())
	b.WriteString("\n")

	if status := m.statusLine(); status != "" {
		b.WriteString(feedbackStyle.Render(status))
		b.WriteString("\n")
	}

	if m.ctrl.PreviewsShown() {
		b.WriteString("\n")
		b.WriteString(m.gridView())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// statusLine merges copy feedback and script save status; copy feedback
// wins because it is the more recent interaction.
func (m PreviewModel) statusLine() string {
	if fb := m.ctrl.Feedback(); fb != "" {
		return fb
	}
	return m.saveStatus
}

// howtoView renders the static panel describing how to obtain a font list.
// Both methods run outside fontdeck; this is reference text only.
func (m PreviewModel) howtoView() string {
	text := "Getting a font list from your system:\n" +
		"  Windows:     press ctrl+s to save " + scripts.FileName + ", then run it in PowerShell\n" +
		"  Linux/macOS: " + scripts.UnixCommand
	return howtoStyle.Render(text)
}

// gridView renders one preview card per available font, ColumnCount cards
// per row.
func (m PreviewModel) gridView() string {
	fonts := m.ctrl.AvailableFonts()
	cols := m.ctrl.ColumnCount()

	cardWidth := 24
	if m.width > 0 {
		if w := m.width/cols - 4; w > cardWidth {
			cardWidth = w
		}
	}

	var rows []string
	for start := 0; start < len(fonts); start += cols {
		end := start + cols
		if end > len(fonts) {
			end = len(fonts)
		}

		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.cardView(fonts[i], i == m.cursor && m.focus == focusGrid, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	grid := strings.Join(rows, "\n")
	counter := StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(fonts)))
	return grid + "\n" + counter
}

// cardView renders a single preview card: the font name and the sample
// text. A terminal cannot switch typefaces per card, so the card shows the
// name the clipboard receives and the text a graphical renderer would set
// in that font.
func (m PreviewModel) cardView(name string, selected bool, width int) string {
	style := cardStyle
	nameStyle := cardNameStyle
	if selected {
		style = cardFocus
		nameStyle = cardNameStyle.Foreground(colorCyan)
	}

	content := nameStyle.Render(name) + "\n" + StyleDim.Render(m.ctrl.DisplaySampleText())
	return style.Width(width).Render(content)
}

// =============================================================================
// Commands
// =============================================================================

// saveScript writes the embedded retrieval script to the working directory
// under its fixed filename.
func saveScript(ctrl *preview.Controller) tea.Cmd {
	return func() tea.Msg {
		name, data := ctrl.ExportScript()
		path := filepath.Join(".", name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return scriptSavedMsg{path: path, err: err}
		}
		return scriptSavedMsg{path: path}
	}
}
