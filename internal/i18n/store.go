package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// PreferenceKey is the fixed key the locale preference is stored under
const PreferenceKey = "preferred-locale"

// FileStore keeps client state as a flat JSON object on disk
type FileStore struct {
	Path string
}

// Load returns the stored locale. Values other than the two supported tags
// are treated as absent.
func (s *FileStore) Load() (Locale, bool) {
	state, err := s.read()
	if err != nil {
		return "", false
	}
	return ParseLocale(state[PreferenceKey])
}

// Save writes locale under PreferenceKey, keeping other keys intact. A state
// file that exists but cannot be decoded is left untouched and reported.
func (s *FileStore) Save(locale Locale) error {
	state, err := s.read()
	if os.IsNotExist(err) {
		state = map[string]string{}
	} else if err != nil {
		return fmt.Errorf("read state %s: %w", s.Path, err)
	}
	state[PreferenceKey] = string(locale)

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	state := map[string]string{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}

// MemoryStore is a Store that lives only for the process
type MemoryStore struct {
	mu     sync.Mutex
	locale Locale
}

func (s *MemoryStore) Load() (Locale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ParseLocale(string(s.locale))
}

func (s *MemoryStore) Save(locale Locale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
	return nil
}
