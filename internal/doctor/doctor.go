package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/jump/internal/alias"
	"github.com/hbjs97/jump/internal/cmdexec"
	"github.com/hbjs97/jump/internal/config"
	"github.com/hbjs97/jump/internal/setup"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// Inputs는 RunAll이 검사할 대상이다.
type Inputs struct {
	ConfigPath string
	StorePath  string
	Snippet    string
	// RCPath가 비어 있으면 설치 여부 검사는 생략한다.
	RCPath string
}

// CheckConfig는 설정 파일을 파싱하고 권한을 확인한다. 파일이 없으면 기본값으로 간주한다.
func CheckConfig(path string) DiagResult {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DiagResult{Name: "config", Status: StatusOK, Message: "설정 파일 없음 (기본값 사용)"}
	}
	if _, err := config.Load(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s 내용을 확인하세요", path),
		}
	}
	if err := config.CheckFilePermissions(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}
	}
	return DiagResult{Name: "config", Status: StatusOK, Message: path}
}

// CheckStore는 별칭 문서를 읽을 수 있는지 확인한다. 없는 문서를 만들지는 않는다.
func CheckStore(path string) DiagResult {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DiagResult{
			Name:    "store",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 아직 생성되지 않음", path),
			Fix:     "jump add <path> <alias>로 첫 별칭을 추가하세요",
		}
	}
	a, err := alias.NewStore(path).Load()
	if err != nil {
		return DiagResult{
			Name:    "store",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s를 수정하거나 다른 이름으로 옮기세요", path),
		}
	}
	return DiagResult{
		Name:    "store",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (%d aliases)", path, a.Len()),
	}
}

// CheckSnippet은 sh -n으로 셸 스니펫 문법을 검사한다.
func CheckSnippet(ctx context.Context, cmd cmdexec.Commander, snippet string) DiagResult {
	out, err := cmd.Run(ctx, "sh", "-n", "-c", snippet)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return DiagResult{
			Name:    "snippet",
			Status:  StatusFail,
			Message: fmt.Sprintf("셸 스니펫 문법 오류: %s", msg),
			Fix:     "function_name 설정과 실행 파일 경로를 확인하세요",
		}
	}
	return DiagResult{Name: "snippet", Status: StatusOK, Message: "sh -n 통과"}
}

// CheckRCFile은 rcPath에 스니펫이 설치되어 있는지 확인한다.
func CheckRCFile(rcPath string) DiagResult {
	if setup.IsHookInstalled(rcPath) {
		return DiagResult{Name: "shell_hook", Status: StatusOK, Message: fmt.Sprintf("%s에 설치됨", rcPath)}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusWarn,
		Message: fmt.Sprintf("%s에 설치되지 않음", rcPath),
		Fix:     fmt.Sprintf("jump setup --install --rc %s", rcPath),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, in Inputs) []DiagResult {
	results := []DiagResult{
		CheckConfig(in.ConfigPath),
		CheckStore(in.StorePath),
		CheckSnippet(ctx, cmd, in.Snippet),
	}
	if in.RCPath != "" {
		results = append(results, CheckRCFile(in.RCPath))
	}
	return results
}
