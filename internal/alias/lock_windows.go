//go:build windows

package alias

import "os"

// Windows에서는 잠금 없이 동작한다.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
