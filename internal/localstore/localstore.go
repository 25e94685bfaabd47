// Package localstore is a small persistent key-value store for client-side
// state. Each key is a JSON file under the base directory. Operations never
// fail outward: storage or serialization problems are logged and reads fall
// back to the caller-supplied default.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Store persists JSON values on the local filesystem.
type Store struct {
	baseDir string
}

// Open prepares a store rooted at baseDir, creating the directory if
// needed. If baseDir is empty, ~/.frauddesk/state is used. Directory
// creation failures are logged; the store remains usable and behaves as
// if every key were absent.
func Open(baseDir string) *Store {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Warn().Err(err).Msg("failed to resolve home directory, local state disabled")
			return &Store{}
		}
		baseDir = filepath.Join(home, ".frauddesk", "state")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		log.Warn().Err(err).Str("baseDir", baseDir).Msg("failed to create state directory")
	}

	return &Store{baseDir: baseDir}
}

// Read unmarshals the value stored under key into a fresh T. Missing keys
// and malformed content both yield the default.
func Read[T any](s *Store, key string, def T) T {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("key", key).Msg("failed to read stored value")
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed stored value, treating as absent")
		return def
	}
	return v
}

// Has reports whether a non-empty value exists under key.
func (s *Store) Has(key string) bool {
	info, err := os.Stat(s.path(key))
	return err == nil && info.Size() > 0
}

// Write serializes v as JSON under key. Failures are logged and swallowed.
func (s *Store) Write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to serialize value")
		return
	}

	// Write to a temp file first so a crash can't leave a torn value.
	path := s.path(key)
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write value")
		return
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		log.Warn().Err(err).Str("key", key).Msg("failed to save value")
	}
}

// Remove deletes the value stored under key, if any.
func (s *Store) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove stored value")
	}
}

// Clear deletes every value in the store.
func (s *Store) Clear() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("failed to list state directory")
		}
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(s.baseDir, entry.Name())); err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("failed to remove stored value")
		}
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}
