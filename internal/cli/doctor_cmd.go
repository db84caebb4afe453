package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/jump/internal/config"
	"github.com/hbjs97/jump/internal/doctor"
	"github.com/hbjs97/jump/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	var rcPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the jump environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd, rcPath)
		},
	}
	cmd.Flags().StringVar(&rcPath, "rc", "", "also check that the shell function is installed in this rc file")
	return cmd
}

func (a *App) runDoctor(cmd *cobra.Command, rcPath string) error {
	out := cmd.OutOrStdout()

	if err := a.load(cmd); err != nil {
		// 설정 오류는 CheckConfig가 보고하고 나머지 진단은 기본값으로 진행한다
		a.cfg = config.Default()
	}

	exe, err := a.executable()
	if err != nil {
		return err
	}
	if rcPath != "" {
		rcPath = config.ExpandHome(rcPath)
	}

	results := doctor.RunAll(cmd.Context(), a.Commander, doctor.Inputs{
		ConfigPath: a.CfgPath,
		StorePath:  a.cfg.ResolveStorePath(a.StorePath),
		Snippet:    shell.Snippet(shell.Options{Executable: exe, FuncName: a.cfg.FunctionName}),
		RCPath:     rcPath,
	})
	printDiagResults(out, results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
