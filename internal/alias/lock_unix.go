//go:build !windows

package alias

import (
	"fmt"
	"os"
	"syscall"
)

// lockFile은 flock(2)로 f에 배타적 lock을 건다. 다른 프로세스가 잡고 있으면 기다린다.
func lockFile(f *os.File) error {
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("lock %s: %w", f.Name(), err)
	}
	return nil
}

func unlockFile(f *os.File) error {
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_UN); err != nil {
		return fmt.Errorf("unlock %s: %w", f.Name(), err)
	}
	return nil
}
