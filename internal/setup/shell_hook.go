package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/jump/internal/shell"
)

// IsHookInstalled는 rcPath에 jump 스니펫이 이미 들어 있는지 확인한다.
func IsHookInstalled(rcPath string) bool {
	existing, err := os.ReadFile(rcPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(existing), shell.Marker)
}

// InstallShellHook은 셸 RC 파일 끝에 snippet을 추가한다.
// 이미 설치되어 있으면 건너뛰고 false를 반환한다.
func InstallShellHook(snippet, rcPath string) (bool, error) {
	if !strings.Contains(snippet, shell.Marker) {
		return false, fmt.Errorf("setup.InstallShellHook: jump 스니펫이 아닙니다")
	}
	if IsHookInstalled(rcPath) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	return true, nil
}
