package cli

import (
	"errors"
	"fmt"

	"github.com/hbjs97/jump/internal/alias"
	"github.com/spf13/cobra"
)

func (a *App) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <alias>",
		Short: "Remove an alias",
		Long:  "Remove an alias. Without an argument on a terminal, pick one interactively.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return a.runRm(cmd, name)
		},
	}
}

func (a *App) runRm(cmd *cobra.Command, name string) error {
	if err := a.load(cmd); err != nil {
		return err
	}

	if name == "" {
		picked, err := a.pickAlias()
		if err != nil {
			return err
		}
		if picked == "" {
			return nil
		}
		name = picked
	}

	if err := a.manager.Remove(name); err != nil {
		return err
	}
	a.logger.Info("alias removed", "name", name)
	fmt.Fprintf(cmd.OutOrStdout(), "Removed alias '%s'\n", name)
	return nil
}

// pickAlias는 대화형으로 삭제할 별칭을 고른다. 별칭이 없으면 빈 문자열을 반환한다.
func (a *App) pickAlias() (string, error) {
	if !a.interactive() {
		return "", fmt.Errorf("cli.rm: 별칭 이름이 필요합니다 (usage: jump rm <alias>)")
	}
	entries, err := a.manager.List()
	if errors.Is(err, alias.ErrNoAliases) {
		return "", fmt.Errorf("cli.rm: %w", err)
	}
	if err != nil {
		return "", err
	}
	name, err := a.FormRunner.RunAliasSelect(entries)
	if err != nil {
		return "", err
	}
	ok, err := a.FormRunner.RunConfirm(fmt.Sprintf("Remove alias '%s'?", name))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return name, nil
}
