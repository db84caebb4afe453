package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path> <alias>",
		Short: "Add a new alias",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(cmd, args[0], args[1])
		},
	}
}

func (a *App) runAdd(cmd *cobra.Command, path, name string) error {
	if err := a.load(cmd); err != nil {
		return err
	}
	entry, err := a.manager.Add(path, name)
	if err != nil {
		return err
	}
	a.logger.Info("alias added", "name", entry.Name, "path", entry.Path)
	fmt.Fprintf(cmd.OutOrStdout(), "Added alias '%s' -> '%s'\n", entry.Name, entry.Path)
	return nil
}
