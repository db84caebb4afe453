package alias

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hbjs97/jump/internal/atomicfile"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Store는 별칭 매핑을 하나의 JSON 문서로 영속화한다.
// 매 작업마다 문서 전체를 읽고, 변경 시 문서 전체를 다시 쓴다.
type Store struct {
	path   string
	logger *slog.Logger
}

// StoreOption은 Store 생성 옵션이다.
type StoreOption func(*Store)

// WithLogger는 Store가 사용할 logger를 지정한다.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore는 path의 문서를 사용하는 Store를 생성한다.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   path,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Path는 문서 경로를 반환한다.
func (s *Store) Path() string {
	return s.path
}

// Load는 문서가 없으면 빈 문서를 만든 뒤 전체 매핑을 읽어 반환한다.
// 문서가 올바른 JSON 객체가 아니면 ErrStorageCorruption을 반환하며 파일은 건드리지 않는다.
func (s *Store) Load() (*Aliases, error) {
	if err := s.ensureExists(); err != nil {
		return nil, fmt.Errorf("alias.Load: %w", err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("alias.Load: %w", err)
	}

	a := New()
	if err := json.Unmarshal(data, a); err != nil {
		s.logger.Error("store document is malformed", "path", s.path, "error", err)
		return nil, fmt.Errorf("alias.Load: %w: %s: %w", ErrStorageCorruption, s.path, err)
	}
	s.logger.Debug("store loaded", "path", s.path, "aliases", a.Len())
	return a, nil
}

// Save는 매핑 전체를 문서에 덮어쓴다. 임시 파일에 쓴 뒤 rename한다.
func (s *Store) Save(a *Aliases) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("alias.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("alias.Save: %w", err)
	}
	if err := atomicfile.Write(s.path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("alias.Save: %w", err)
	}
	s.logger.Debug("store saved", "path", s.path, "aliases", a.Len())
	return nil
}

// Update는 잠금을 잡은 상태에서 load -> fn -> save를 수행한다.
// fn이 에러를 반환하면 저장하지 않는다.
func (s *Store) Update(fn func(*Aliases) error) error {
	unlock, err := s.lock()
	if err != nil {
		return fmt.Errorf("alias.Update: %w", err)
	}
	defer unlock()

	a, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(a); err != nil {
		return err
	}
	return s.Save(a)
}

func (s *Store) ensureExists() error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return err
	}
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.logger.Info("creating empty store", "path", s.path)
	return atomicfile.Write(s.path, []byte("{}\n"), filePerm)
}

// lock은 문서 옆의 .lock 파일에 배타적 advisory lock을 건다.
func (s *Store) lock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(s.path+".lock", os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return nil, err
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		_ = unlockFile(f) // Close가 어차피 lock을 해제한다
		f.Close()
	}, nil
}
