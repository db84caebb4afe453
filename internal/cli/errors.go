package cli

import (
	"github.com/hbjs97/jump/internal/alias"
	"github.com/hbjs97/jump/internal/config"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrPathNotFound는 add 대상 경로가 없을 때의 sentinel error다.
	ErrPathNotFound = alias.ErrPathNotFound
	// ErrAliasNotFound는 알 수 없는 별칭에 대한 sentinel error다.
	ErrAliasNotFound = alias.ErrAliasNotFound
	// ErrStorageCorruption은 별칭 문서가 손상되었을 때의 sentinel error다.
	ErrStorageCorruption = alias.ErrStorageCorruption
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
