// Package atomicfile writes files through a temporary file in the same
// directory followed by a rename, so readers never observe a partial write.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write는 path와 같은 디렉토리에 임시 파일을 만들어 data를 쓰고 sync한 뒤 rename한다.
// 실패하면 임시 파일은 삭제된다.
func Write(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("atomicfile.Write: %w", err)
	}
	tmp := f.Name()
	done := false
	defer func() {
		if !done {
			os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("atomicfile.Write: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("atomicfile.Write: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("atomicfile.Write: %w", err)
	}
	if err := os.Chmod(tmp, perm); err != nil {
		return fmt.Errorf("atomicfile.Write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomicfile.Write: %w", err)
	}
	done = true
	return nil
}
