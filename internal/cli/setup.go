package cli

import (
	"fmt"

	"github.com/hbjs97/jump/internal/config"
	"github.com/hbjs97/jump/internal/setup"
	"github.com/hbjs97/jump/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var install, yes bool
	var rcPath, funcName string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Show setup instructions",
		Long: "Print the shell function that makes `j <alias>` change directory.\n" +
			"With --install --rc FILE the function is appended to FILE (once).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if install {
				return a.runSetupInstall(cmd, rcPath, funcName, yes)
			}
			return a.runSetup(cmd, funcName)
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "append the shell function to --rc")
	cmd.Flags().StringVar(&rcPath, "rc", "", "shell rc file to install into (e.g. ~/.bashrc)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	cmd.Flags().StringVar(&funcName, "name", "", "shell function name (default from config, then \"j\")")
	return cmd
}

func (a *App) shellOptions(cmd *cobra.Command, funcName string) (shell.Options, error) {
	if err := a.load(cmd); err != nil {
		return shell.Options{}, err
	}
	exe, err := a.executable()
	if err != nil {
		return shell.Options{}, err
	}
	if funcName == "" {
		funcName = a.cfg.FunctionName
	}
	return shell.Options{Executable: exe, FuncName: funcName}, nil
}

// runSetup는 셸 함수와 설치 안내를 출력한다.
func (a *App) runSetup(cmd *cobra.Command, funcName string) error {
	opts, err := a.shellOptions(cmd, funcName)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), shell.Instructions(opts))
	return nil
}

// runSetupInstall는 셸 함수를 rc 파일에 추가한다.
func (a *App) runSetupInstall(cmd *cobra.Command, rcPath, funcName string, yes bool) error {
	if rcPath == "" {
		return fmt.Errorf("cli.setup: --install에는 --rc가 필요합니다")
	}
	rcPath = config.ExpandHome(rcPath)

	opts, err := a.shellOptions(cmd, funcName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if setup.IsHookInstalled(rcPath) {
		fmt.Fprintf(out, "Shell integration already installed in %s\n", rcPath)
		return nil
	}

	if !yes {
		if !a.interactive() {
			return fmt.Errorf("cli.setup: 비대화형 실행에서는 --yes가 필요합니다")
		}
		ok, err := a.FormRunner.RunConfirm(fmt.Sprintf("Append the %s() function to %s?", opts.FuncName, rcPath))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Setup cancelled.")
			return nil
		}
	}

	if _, err := setup.InstallShellHook(shell.Snippet(opts), rcPath); err != nil {
		return err
	}
	a.logger.Info("shell integration installed", "rc", rcPath, "function", opts.FuncName)
	fmt.Fprintf(out, "Shell integration installed in %s\n", rcPath)
	fmt.Fprintf(out, "Reload your shell with: source %s\n", rcPath)
	return nil
}
