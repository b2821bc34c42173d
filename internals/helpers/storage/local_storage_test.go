package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Root:    t.TempDir(),
		BaseURL: "http://localhost:3000/storage",
	}
}

func TestSaveBytesAndExists(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.SaveBytes("schedule-images/a.webp", []byte("data")))
	assert.True(t, s.Exists("schedule-images/a.webp"))
	assert.False(t, s.Exists("schedule-images/b.webp"))
	assert.False(t, s.Exists(""))
}

func TestDelete(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.SaveBytes("settings/logo.webp", []byte("x")))
	require.NoError(t, s.Delete("settings/logo.webp"))
	assert.False(t, s.Exists("settings/logo.webp"))

	// hapus ulang dan key kosong bukan error
	assert.NoError(t, s.Delete("settings/logo.webp"))
	assert.NoError(t, s.Delete(""))
}

func TestPathStaysUnderRoot(t *testing.T) {
	s := newTestService(t)

	got := s.Path("../../etc/passwd")
	rel, err := filepath.Rel(s.Root, got)
	require.NoError(t, err)
	assert.NotContains(t, rel, "..")
}

func TestPublicURL(t *testing.T) {
	s := newTestService(t)

	assert.Equal(t, "http://localhost:3000/storage/settings/logo.webp", s.PublicURL("settings/logo.webp"))
	assert.Equal(t, "http://localhost:3000/storage/settings/logo.webp", s.PublicURL("/settings/logo.webp"))
}
