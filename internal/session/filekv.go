package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kart-io/skillswap/pkg/utils/json"
)

// FileKV persists keys as a single JSON object on disk. Writes go through a
// temp file and rename so a crash mid-write never leaves a torn file.
type FileKV struct {
	path string
	data map[string]string
}

// NewFileKV loads (or initializes) the store at path. A missing file is an
// empty store; a corrupt file is replaced on the next write.
func NewFileKV(path string) (*FileKV, error) {
	kv := &FileKV{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &kv.data); err != nil {
		// 文件损坏按空存储处理
		kv.data = make(map[string]string)
	}
	return kv, nil
}

func (f *FileKV) Get(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *FileKV) Set(key, value string) error {
	f.data[key] = value
	return f.flush()
}

func (f *FileKV) Delete(key string) error {
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

func (f *FileKV) flush() error {
	raw, err := json.Marshal(f.data)
	if err != nil {
		return fmt.Errorf("encode session data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return os.Rename(tmp, f.path)
}
