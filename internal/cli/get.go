package cli

import (
	"errors"
	"fmt"

	"github.com/hbjs97/jump/internal/alias"
	"github.com/spf13/cobra"
)

func (a *App) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <alias>",
		Short: "Print the path for an alias",
		Long: "Print the stored path for an alias with no trailing newline, so a shell can capture it verbatim.\n" +
			"Unknown aliases print nothing and exit with status 3.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd, args[0])
		},
	}
}

func (a *App) runGet(cmd *cobra.Command, name string) error {
	if err := a.load(cmd); err != nil {
		return err
	}
	path, err := a.manager.Resolve(name)
	if errors.Is(err, alias.ErrAliasNotFound) {
		// 셸 함수가 "Unknown alias" 메시지를 출력한다
		cmd.SilenceErrors = true
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), path)
	return nil
}
