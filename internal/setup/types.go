package setup

import "github.com/hbjs97/jump/internal/alias"

// FormRunner는 TUI 프롬프트 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunAliasSelect는 별칭 목록에서 하나를 고르는 UI를 표시한다.
	RunAliasSelect(entries []alias.Entry) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
