package store

import (
	"encoding/json"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Storage is the durable key-value substrate backing every record in the
// app: owner-scoped calendars, the user list, reset tokens, the session
// record and inboxes. Values are whole JSON blobs rewritten on every
// mutation; there is no incremental write path and no locking, matching
// the single-writer model this data has always had.
type Storage struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a Storage rooted at the configured base path. A nil
// config loads the default one.
func Open(cfg Config) (*Storage, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return OpenPath(cfg.BasePath())
}

// OpenPath creates a Storage rooted at an explicit directory.
func OpenPath(basePath string) (*Storage, error) {
	return &Storage{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath returns the root of the data tree.
func (s *Storage) BasePath() string {
	return s.basePath
}

// ReadJSON unmarshals the record at key into v. A missing record returns
// (false, nil) and leaves v untouched; read and decode failures surface
// as StorageError.
func (s *Storage) ReadJSON(key string, v any) (bool, error) {
	if !s.d.Has(key) {
		return false, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		return false, &StorageError{Op: "read", Key: key, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &StorageError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

// WriteJSON replaces the record at key with the JSON encoding of v.
func (s *Storage) WriteJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := s.d.Write(key, data); err != nil {
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Erase removes the record at key. Erasing an absent record is a no-op.
func (s *Storage) Erase(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return &StorageError{Op: "erase", Key: key, Err: err}
	}
	return nil
}

// Keys are `<namespace>` or `<namespace>-<owner>`; the namespace becomes
// a directory so each record class keeps its own subtree.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{FileName: parts[0]}
	}
	return &diskv.PathKey{Path: []string{parts[0]}, FileName: parts[1]}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "-") + "-" + pathKey.FileName
}
