package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontdeck/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "fontdeck"

// Execute runs the fontdeck CLI with the given context and returns an
// error if any command fails. This is the main entry point for the CLI
// application; main passes a context cancelled on SIGINT/SIGTERM.
//
// Running fontdeck without a subcommand opens the interactive preview
// screen; the preview, list, export-script, and completion subcommands are
// registered on the same root.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Fontdeck previews installed fonts with your own sample text",
		Long: `Fontdeck renders a sample text in every font from a list you paste in,
so you can compare the fonts installed on a machine side by side. It never
reads font files itself: paste the output of your system's font listing
command (see 'fontdeck export-script' for Windows, fc-list elsewhere) and
fontdeck merges it with a built-in set of common families.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare `fontdeck` behaves like `fontdeck preview`.
			return runPreview(cmd.Context(), previewOpts{})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPreviewCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newExportScriptCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
