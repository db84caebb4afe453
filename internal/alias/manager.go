package alias

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
)

// Manager는 Store 위에서 add/remove/list/resolve를 수행한다.
type Manager struct {
	store *Store
	stat  func(string) (os.FileInfo, error)
}

// NewManager는 store를 사용하는 Manager를 생성한다.
func NewManager(store *Store) *Manager {
	return &Manager{store: store, stat: os.Stat}
}

// Store는 Manager가 사용하는 Store를 반환한다.
func (m *Manager) Store() *Store {
	return m.store
}

// Add는 path를 절대 경로로 확장해 name에 연결한다.
// 경로가 없으면 ErrPathNotFound를 반환하고 문서는 변경하지 않는다.
// 같은 이름이 이미 있으면 조용히 덮어쓴다.
func (m *Manager) Add(path, name string) (Entry, error) {
	if strings.TrimSpace(name) == "" {
		return Entry{}, fmt.Errorf("alias.Add: %w: 이름이 비어 있습니다", ErrInvalidName)
	}
	abs, err := ExpandPath(path)
	if err != nil {
		return Entry{}, fmt.Errorf("alias.Add: %w", err)
	}
	if _, err := m.stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return Entry{}, fmt.Errorf("alias.Add: %w: %s", ErrPathNotFound, abs)
		}
		return Entry{}, fmt.Errorf("alias.Add: %w", err)
	}

	err = m.store.Update(func(a *Aliases) error {
		if prev, ok := a.Get(name); ok && prev != abs {
			m.store.logger.Debug("overwriting alias", "name", name, "old", prev, "new", abs)
		}
		a.Set(name, abs)
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Path: abs}, nil
}

// Remove는 name을 삭제한다. 없으면 ErrAliasNotFound를 반환한다.
func (m *Manager) Remove(name string) error {
	return m.store.Update(func(a *Aliases) error {
		if !a.Delete(name) {
			return fmt.Errorf("alias.Remove: %w: %s", ErrAliasNotFound, name)
		}
		return nil
	})
}

// List는 모든 별칭을 삽입 순서대로 반환한다. 비어 있으면 ErrNoAliases다.
func (m *Manager) List() ([]Entry, error) {
	a, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return nil, ErrNoAliases
	}
	return a.Entries(), nil
}

// Filter는 이름이 glob pattern에 맞는 별칭만 반환한다.
func (m *Manager) Filter(pattern string) ([]Entry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("alias.Filter: %w: %s", doublestar.ErrBadPattern, pattern)
	}
	entries, err := m.List()
	if err != nil {
		return nil, err
	}
	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := doublestar.Match(pattern, e.Name)
		if err != nil {
			return nil, fmt.Errorf("alias.Filter: %w", err)
		}
		if ok {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Resolve는 name에 저장된 경로를 반환한다. 경로가 여전히 존재하는지는 확인하지 않는다.
func (m *Manager) Resolve(name string) (string, error) {
	a, err := m.store.Load()
	if err != nil {
		return "", err
	}
	path, ok := a.Get(name)
	if !ok {
		return "", fmt.Errorf("alias.Resolve: %w: %s", ErrAliasNotFound, name)
	}
	return path, nil
}

// ExpandPath는 "~", "~/x", "~user/x" 형태를 홈 디렉토리로 확장하고 절대 경로로 만든다.
// 알 수 없는 사용자는 확장하지 않는다.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		rest := path[1:]
		name := rest
		if i := strings.IndexAny(rest, `/`+string(filepath.Separator)); i >= 0 {
			name = rest[:i]
			rest = rest[i:]
		} else {
			rest = ""
		}

		home := ""
		if name == "" {
			h, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("alias.ExpandPath: %w", err)
			}
			home = h
		} else if u, err := user.Lookup(name); err == nil {
			home = u.HomeDir
		}
		if home != "" {
			path = home + rest
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("alias.ExpandPath: %w", err)
	}
	return abs, nil
}
