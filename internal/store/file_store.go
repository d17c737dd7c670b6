package store

import (
	"os"
	"path/filepath"
	"sync"

	"lattice/internal/domain"
)

const idFile = "identity.enc"

// FileStore persists the encrypted node identity under a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveIdentity seals the identity blob under the passphrase and writes it to
// disk.
func (s *FileStore) SaveIdentity(passphrase string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, blob, N, r, p)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, idFile), ct, 0o600)
}

// LoadIdentity reads and opens the stored identity blob.
func (s *FileStore) LoadIdentity(passphrase string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, idFile))
	if err != nil {
		return nil, err
	}
	return decrypt(passphrase, b)
}

// Compile-time assertion that FileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*FileStore)(nil)
