package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hbjs97/jump/internal/alias"
	"github.com/spf13/cobra"
)

func (a *App) newLsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ls [pattern]",
		Short: "List all aliases",
		Long:  "List all aliases in the order they were added. An optional glob pattern filters by name.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			return a.runLs(cmd, pattern, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func (a *App) runLs(cmd *cobra.Command, pattern string, asJSON bool) error {
	if err := a.load(cmd); err != nil {
		return err
	}

	var entries []alias.Entry
	var err error
	if pattern == "" {
		entries, err = a.manager.List()
	} else {
		entries, err = a.manager.Filter(pattern)
	}
	empty := errors.Is(err, alias.ErrNoAliases)
	if err != nil && !empty {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if entries == nil {
			entries = []alias.Entry{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	switch {
	case empty:
		fmt.Fprintln(out, "No aliases defined.")
	case len(entries) == 0:
		fmt.Fprintf(out, "No aliases match '%s'.\n", pattern)
	default:
		fmt.Fprintln(out, "Defined aliases:")
		for _, e := range entries {
			fmt.Fprintf(out, "  %s -> %s\n", e.Name, e.Path)
		}
	}
	return nil
}
