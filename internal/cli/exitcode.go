package cli

import (
	"errors"
)

// ExitCode는 jump의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitPathNotFound는 add 대상 경로가 없는 경우다.
	ExitPathNotFound ExitCode = 2
	// ExitAliasNotFound는 알 수 없는 별칭이다.
	ExitAliasNotFound ExitCode = 3
	// ExitStorageCorruption은 별칭 문서 손상이다.
	ExitStorageCorruption ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, ErrAliasNotFound):
		return ExitAliasNotFound
	case errors.Is(err, ErrStorageCorruption):
		return ExitStorageCorruption
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
