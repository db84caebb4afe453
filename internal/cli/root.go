package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hbjs97/jump/internal/alias"
	"github.com/hbjs97/jump/internal/cmdexec"
	"github.com/hbjs97/jump/internal/config"
	"github.com/hbjs97/jump/internal/logger"
	"github.com/hbjs97/jump/internal/setup"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const helpText = `jump - Directory alias manager (use j command)

Usage:
  j <alias>              - Navigate to the directory for the given alias
  j add <path> <alias>   - Add a new alias
  j rm <alias>           - Remove an alias
  j ls                   - List all aliases
  j help                 - Show this help message
  j setup                - Show setup instructions`

// App은 CLI 실행에 필요한 의존성을 담는다. 테스트에서는 필드를 직접 채운다.
type App struct {
	Commander  cmdexec.Commander
	FormRunner setup.FormRunner
	// CfgPath는 config.toml 경로다.
	CfgPath string
	// StorePath는 --store 플래그 값이다. 비어 있으면 설정/환경변수/기본값을 따른다.
	StorePath string
	Verbose   bool
	// Executable은 셸 스니펫이 호출할 실행 파일이다. 비어 있으면 os.Executable.
	Executable string
	// IsTerminal은 대화형 프롬프트를 띄울 수 있는지 판단한다.
	IsTerminal func() bool

	cfg     *config.Config
	logger  *slog.Logger
	closer  io.Closer
	manager *alias.Manager
}

// NewApp은 실제 실행 환경용 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander:  &cmdexec.RealCommander{},
		FormRunner: &setup.HuhFormRunner{},
		CfgPath:    config.DefaultPath(),
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// NewRootCmd는 jump CLI의 루트 명령을 생성한다.
// 인자가 없거나 알 수 없는 명령이면 도움말을 출력한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jump",
		Short:        "Directory alias manager",
		Long:         helpText,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	if a.CfgPath == "" {
		a.CfgPath = config.DefaultPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "config file path")
	cmd.PersistentFlags().StringVar(&a.StorePath, "store", a.StorePath, "alias store path (overrides $JUMP_STORE and store_path)")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", a.Verbose, "log debug output to stderr")

	cmd.AddCommand(
		a.newAddCmd(),
		a.newRmCmd(),
		a.newLsCmd(),
		a.newGetCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

// Close는 로그 파일 등 App이 연 자원을 닫는다.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// load는 설정을 읽고 logger와 Manager를 준비한다. 한 번만 수행된다.
func (a *App) load(cmd *cobra.Command) error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	l, closer := logger.New(logger.Options{
		File:      cfg.LogFilePath(),
		MaxSizeMB: cfg.LogMaxSizeMB,
		Level:     logger.ParseLevel(cfg.LogLevel),
		Verbose:   a.Verbose,
		Stderr:    cmd.ErrOrStderr(),
	})
	storePath := cfg.ResolveStorePath(a.StorePath)
	l.Debug("config loaded", "config", a.CfgPath, "store", storePath, "command", cmd.Name())

	a.cfg = cfg
	a.logger = l
	a.closer = closer
	a.manager = alias.NewManager(alias.NewStore(storePath, alias.WithLogger(l)))
	return nil
}

func (a *App) executable() (string, error) {
	if a.Executable != "" {
		return a.Executable, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cli.executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

func (a *App) interactive() bool {
	return a.IsTerminal != nil && a.IsTerminal()
}
