package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontdeck/pkg/errors"
	"github.com/matzehuels/fontdeck/pkg/scripts"
)

// exportOpts holds the command-line flags for the export-script command.
type exportOpts struct {
	output string // output path, defaults to ./list-fonts.ps1
	force  bool   // overwrite an existing file
}

// newExportScriptCmd creates the export-script command. It writes the
// embedded Windows font retrieval helper under its fixed filename. The
// content is a static asset and identical on every invocation.
func newExportScriptCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export-script",
		Short: "Save the Windows font retrieval helper script",
		Long: `Save the Windows font retrieval helper script.

The script lists the font families installed on a Windows machine, one per
line, ready to paste into fontdeck. Run it on the target machine with:

  powershell -ExecutionPolicy Bypass -File ` + scripts.FileName + `

On Linux and macOS no script is needed; use:

  ` + scripts.UnixCommand,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportScript(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (default ./"+scripts.FileName+")")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing file")

	return cmd
}

// runExportScript writes the script asset to the resolved output path,
// refusing to overwrite existing files unless --force is given.
func runExportScript(ctx context.Context, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	path := opts.output
	if path == "" {
		path = filepath.Join(".", scripts.FileName)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeFileExists, "%s already exists (use --force to overwrite)", path)
		}
	}

	data := scripts.ListFontsPS1()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}

	logger.Debugf("Wrote %d bytes", len(data))
	printSuccess("Exported font retrieval script")
	printFile(path)
	printDetail("run it on the target machine, then paste the output into fontdeck")
	return nil
}
