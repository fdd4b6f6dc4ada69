package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontdeck/pkg/fontlist"
)

// listOpts holds the command-line flags for the list command.
type listOpts struct {
	plain      bool   // print bare names instead of a table
	configPath string // alternate config file location
}

// newListCmd creates the list command. It prints the Available Font Set
// for a raw list without opening the interactive screen, which is handy in
// scripts and for checking what a pasted list will turn into.
func newListCmd() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "Print the merged, sorted font set for a raw list",
		Long: `Print the merged, sorted font set for a raw list.

Reads a newline- or comma-separated font list from the given file ('-' for
stdin), merges it with the built-in families and any fonts from the config
file, deduplicates, and prints the result in alphabetical order. With no
argument only the built-in and configured fonts are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runList(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print bare font names, one per line")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/fontdeck/config.toml)")

	return cmd
}

// runList merges the input list with the base set and prints it.
func runList(ctx context.Context, input string, opts listOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	var user []string
	if input != "" {
		raw, err := readFontList(input)
		if err != nil {
			return err
		}
		user = fontlist.Parse(raw)
	}
	logger.Debugf("Parsed %d user fonts", len(user))

	base := append(append([]string(nil), fontlist.Builtin...), cfg.Fonts...)
	merged := fontlist.MergeInto(base, user)

	if opts.plain {
		for _, name := range merged {
			fmt.Println(name)
		}
		return nil
	}

	printFontTable(merged, fontSources(base, user))
	return nil
}

// fontSources maps each font name to where it came from, for the table's
// source column.
func fontSources(base, user []string) map[string]string {
	sources := make(map[string]string, len(base)+len(user))
	for _, name := range user {
		sources[name] = "pasted"
	}
	for _, name := range base {
		if _, ok := sources[name]; ok {
			sources[name] = "built-in, pasted"
		} else {
			sources[name] = "built-in"
		}
	}
	return sources
}

// printFontTable renders the merged set as a bordered table.
func printFontTable(fonts []string, sources map[string]string) {
	rows := make([][]string, len(fonts))
	for i, name := range fonts {
		rows[i] = []string{name, sources[name]}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Font", "Source").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 1 {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	fmt.Println(StyleDim.Render(fmt.Sprintf("  %d fonts", len(fonts))))
}
