package alias

import "errors"

var (
	// ErrPathNotFound는 add 대상 경로가 존재하지 않을 때의 sentinel error다.
	ErrPathNotFound = errors.New("path does not exist")
	// ErrAliasNotFound는 존재하지 않는 별칭을 조회/삭제할 때의 sentinel error다.
	ErrAliasNotFound = errors.New("alias not found")
	// ErrStorageCorruption은 별칭 문서를 해석할 수 없을 때의 sentinel error다.
	ErrStorageCorruption = errors.New("alias store is corrupted")
	// ErrNoAliases는 별칭이 하나도 없을 때 List가 반환한다.
	ErrNoAliases = errors.New("no aliases defined")
	// ErrInvalidName은 빈 별칭 이름에 대한 sentinel error다.
	ErrInvalidName = errors.New("invalid alias name")
)
