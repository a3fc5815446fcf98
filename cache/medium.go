package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrQuotaExceeded is returned by a Medium when a write would push it past
// its storage budget.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Medium is the persistent key-value storage the cache sits on. It is
// deliberately dumb: no TTLs, no envelopes, just bytes under keys and a
// quota it may refuse to exceed.
type Medium interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
	Keys() ([]string, error)
}

// FileMedium stores each key as one file under a root directory, with a
// byte quota across all keys. It stands in for the size-limited local
// storage the cached data originally lived in. Not safe for multiple
// processes writing the same root; last writer wins, which is acceptable
// for advisory cache data.
type FileMedium struct {
	root  string
	quota int64
}

const filePerm = 0o644

func NewFileMedium(root string, quota int64) (*FileMedium, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("error creating cache dir: %w", err)
	}
	return &FileMedium{root: root, quota: quota}, nil
}

func (m *FileMedium) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(m.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (m *FileMedium) Write(key string, data []byte) error {
	if m.quota > 0 {
		used, err := m.usageExcluding(key)
		if err != nil {
			return err
		}
		if used+int64(len(data)) > m.quota {
			return ErrQuotaExceeded
		}
	}
	return os.WriteFile(m.path(key), data, filePerm)
}

func (m *FileMedium) Delete(key string) error {
	err := os.Remove(m.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (m *FileMedium) Keys() ([]string, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ".json"))
	}
	return keys, nil
}

func (m *FileMedium) usageExcluding(key string) (int64, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return 0, err
	}

	var used int64
	skip := fmt.Sprintf("%s.json", sanitizeKey(key))
	for _, e := range entries {
		if e.IsDir() || e.Name() == skip {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		used += info.Size()
	}
	return used, nil
}

func (m *FileMedium) path(key string) string {
	return filepath.Join(m.root, fmt.Sprintf("%s.json", sanitizeKey(key)))
}

func sanitizeKey(key string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return r.Replace(key)
}
