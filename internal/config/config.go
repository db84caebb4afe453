package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

// EnvStore는 별칭 문서 경로를 덮어쓰는 환경변수다.
const EnvStore = "JUMP_STORE"

// Config는 jump 설정 파일의 최상위 구조체다. 모든 항목은 선택이다.
type Config struct {
	Version      int    `toml:"version"`
	StorePath    string `toml:"store_path,omitempty"`
	FunctionName string `toml:"function_name"`
	LogFile      string `toml:"log_file,omitempty"`
	LogLevel     string `toml:"log_level"`
	LogMaxSizeMB int    `toml:"log_max_size_mb"`
}

var funcNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var logLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Dir는 설정 디렉토리($XDG_CONFIG_HOME/jump 또는 ~/.config/jump)를 반환한다.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jump")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "jump")
}

// DefaultPath는 기본 config.toml 경로다.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultStorePath는 기본 별칭 문서 경로다.
func DefaultStorePath() string {
	return filepath.Join(Dir(), "aliases.json")
}

// Default는 설정 파일이 없을 때의 Config다.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱한다. 파일이 없으면 기본값을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 cfg를 TOML로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// ResolveStorePath는 별칭 문서 경로를 결정한다.
// 우선순위: flag > JUMP_STORE > store_path > 기본 경로.
func (c *Config) ResolveStorePath(flag string) string {
	switch {
	case flag != "":
		return ExpandHome(flag)
	case os.Getenv(EnvStore) != "":
		return ExpandHome(os.Getenv(EnvStore))
	case c.StorePath != "":
		return ExpandHome(c.StorePath)
	default:
		return DefaultStorePath()
	}
}

// LogFilePath는 ~가 확장된 로그 파일 경로다. 설정이 없으면 빈 문자열.
func (c *Config) LogFilePath() string {
	if c.LogFile == "" {
		return ""
	}
	return ExpandHome(c.LogFile)
}

// ExpandHome은 "~" 또는 "~/"로 시작하는 경로를 홈 디렉토리 기준으로 확장한다.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// CheckFilePermissions는 group/other 쓰기 권한이 있으면 에러를 반환한다.
func CheckFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.CheckFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0022 != 0 {
		return fmt.Errorf("config.CheckFilePermissions: %s 권한이 %o (다른 사용자가 쓸 수 있음)", path, perm)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.FunctionName == "" {
		c.FunctionName = "j"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 5
	}
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if !funcNameRegex.MatchString(c.FunctionName) {
		return fmt.Errorf("config.Load: %w: function_name %q는 셸 함수 이름으로 쓸 수 없습니다", ErrConfig, c.FunctionName)
	}
	if !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("config.Load: %w: log_level %q", ErrConfig, c.LogLevel)
	}
	if c.LogMaxSizeMB < 0 {
		return fmt.Errorf("config.Load: %w: log_max_size_mb는 0 이상이어야 합니다", ErrConfig)
	}
	return nil
}
