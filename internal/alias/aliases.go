package alias

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry는 별칭 하나와 그 절대 경로다.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Aliases는 삽입 순서를 유지하는 별칭 -> 경로 매핑이다.
// JSON 문서의 키 순서가 그대로 보존된다.
type Aliases struct {
	entries []Entry
	index   map[string]int
}

// New는 빈 매핑을 생성한다.
func New() *Aliases {
	return &Aliases{index: make(map[string]int)}
}

// Len은 별칭 개수를 반환한다.
func (a *Aliases) Len() int {
	return len(a.entries)
}

// Get은 별칭에 대응하는 경로를 반환한다.
func (a *Aliases) Get(name string) (string, bool) {
	i, ok := a.index[name]
	if !ok {
		return "", false
	}
	return a.entries[i].Path, true
}

// Set은 별칭을 추가하거나 덮어쓴다. 덮어쓸 때는 기존 위치를 유지한다.
func (a *Aliases) Set(name, path string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[name]; ok {
		a.entries[i].Path = path
		return
	}
	a.index[name] = len(a.entries)
	a.entries = append(a.entries, Entry{Name: name, Path: path})
}

// Delete는 별칭을 제거하고 존재 여부를 반환한다.
func (a *Aliases) Delete(name string) bool {
	i, ok := a.index[name]
	if !ok {
		return false
	}
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	delete(a.index, name)
	for j := i; j < len(a.entries); j++ {
		a.index[a.entries[j].Name] = j
	}
	return true
}

// Entries는 삽입 순서대로 모든 항목의 복사본을 반환한다.
func (a *Aliases) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// MarshalJSON은 삽입 순서대로 JSON 객체를 생성한다.
func (a *Aliases) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON은 문자열 값만 갖는 JSON 객체를 키 순서대로 읽는다.
func (a *Aliases) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("JSON 객체가 아닙니다: %v", tok)
	}

	out := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("잘못된 키: %v", tok)
		}
		var path *string
		if err := dec.Decode(&path); err != nil {
			return fmt.Errorf("별칭 %q: %w", name, err)
		}
		if path == nil {
			return fmt.Errorf("별칭 %q: 경로가 null입니다", name)
		}
		out.Set(name, *path)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*a = *out
	return nil
}
