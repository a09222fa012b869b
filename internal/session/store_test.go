package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := &FileStore{Path: path}

	_, ok := s.Token()
	assert.False(t, ok)

	assert.NoError(t, s.Save("tok-123"))

	got, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-123", got)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func Test_FileStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := &FileStore{Path: path}

	assert.NoError(t, s.Save("tok-123"))
	assert.NoError(t, s.Clear())

	_, ok := s.Token()
	assert.False(t, ok)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func Test_FileStoreClearIsIdempotent(t *testing.T) {
	s := &FileStore{Path: filepath.Join(t.TempDir(), "token")}

	assert.NoError(t, s.Clear())
	assert.NoError(t, s.Clear())
}

func Test_FileStoreRejectsEmptyToken(t *testing.T) {
	s := &FileStore{Path: filepath.Join(t.TempDir(), "token")}

	assert.Error(t, s.Save(""))
}

func Test_FileStoreIgnoresWhitespaceOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	assert.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	s := &FileStore{Path: path}

	_, ok := s.Token()
	assert.False(t, ok)
}

func Test_MemoryStore(t *testing.T) {
	s := &MemoryStore{}

	_, ok := s.Token()
	assert.False(t, ok)

	assert.Error(t, s.Save(""))
	assert.NoError(t, s.Save("tok"))

	got, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", got)

	assert.NoError(t, s.Clear())
	_, ok = s.Token()
	assert.False(t, ok)
}
