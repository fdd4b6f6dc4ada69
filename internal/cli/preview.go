package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontdeck/pkg/clipboard"
	"github.com/matzehuels/fontdeck/pkg/config"
	"github.com/matzehuels/fontdeck/pkg/errors"
	"github.com/matzehuels/fontdeck/pkg/preview"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	sample     string // initial sample text (overrides config)
	columns    int    // initial column count (overrides config)
	fontsFile  string // file with a raw font list, "-" for stdin
	configPath string // alternate config file location
}

// newPreviewCmd creates the preview command that opens the interactive
// screen. It is also what the bare root command runs.
func newPreviewCmd() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open the interactive font preview screen",
		Long: `Open the interactive font preview screen.

Type a sample text, paste a font list (newline or comma separated), pick a
column count, and generate a grid of preview cards, one per font. Selecting
a card copies the font name to the clipboard.

The pasted list is merged with a built-in set of common font families,
deduplicated, and sorted. An initial list can be preloaded with --fonts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("columns") {
				if err := errors.ValidateColumns(opts.columns); err != nil {
					return err
				}
			}
			return runPreview(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sample, "sample", "s", "", "initial sample text")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", 0, "grid columns (1-6)")
	cmd.Flags().StringVarP(&opts.fontsFile, "fonts", "f", "", "file with a raw font list ('-' for stdin)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/fontdeck/config.toml)")

	return cmd
}

// runPreview assembles the controller from config and flags and runs the
// Bubble Tea program until the user quits.
func runPreview(ctx context.Context, opts previewOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	ctrlOpts := []preview.Option{
		preview.WithSampleText(cfg.SampleText),
		preview.WithColumns(cfg.Columns),
		preview.WithExtraFonts(cfg.Fonts),
	}
	if opts.sample != "" {
		ctrlOpts = append(ctrlOpts, preview.WithSampleText(opts.sample))
	}
	if opts.columns != 0 {
		ctrlOpts = append(ctrlOpts, preview.WithColumns(opts.columns))
	}

	ctrl := preview.New(clipboard.NewSystem(), ctrlOpts...)

	if opts.fontsFile != "" {
		raw, err := readFontList(opts.fontsFile)
		if err != nil {
			return err
		}
		ctrl.SetRawFontList(raw)
	}

	logger.Debugf("Starting preview with %d available fonts", len(ctrl.AvailableFonts()))

	p := tea.NewProgram(newPreviewModel(ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// loadConfig loads the config from path, or from the default location when
// path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

// readFontList reads a raw font list from path, or from stdin when path
// is "-".
func readFontList(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read font list %s", path)
	}
	return string(data), nil
}
