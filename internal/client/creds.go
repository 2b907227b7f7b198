package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Credentials is the durable session material: the bearer token plus
// the identity it was issued for.
type Credentials struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrNoCredentials is returned by Load when nothing is stored.
var ErrNoCredentials = errors.New("no stored credentials")

// CredentialStore persists credentials across client runs.
type CredentialStore interface {
	Load() (*Credentials, error)
	Save(creds *Credentials) error
	Clear() error
}

// FileCredentialStore keeps credentials in a JSON file, created with
// owner-only permissions since it holds a live token.
type FileCredentialStore struct {
	Path string
}

func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{Path: path}
}

func (s *FileCredentialStore) Load() (*Credentials, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoCredentials
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, err
	}
	if creds.Token == "" {
		return nil, ErrNoCredentials
	}
	return &creds, nil
}

func (s *FileCredentialStore) Save(creds *Credentials) error {
	raw, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, raw, 0o600)
}

func (s *FileCredentialStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryCredentialStore holds credentials in memory, for tests.
type MemoryCredentialStore struct {
	creds *Credentials
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) Load() (*Credentials, error) {
	if s.creds == nil {
		return nil, ErrNoCredentials
	}
	clone := *s.creds
	return &clone, nil
}

func (s *MemoryCredentialStore) Save(creds *Credentials) error {
	clone := *creds
	s.creds = &clone
	return nil
}

func (s *MemoryCredentialStore) Clear() error {
	s.creds = nil
	return nil
}
