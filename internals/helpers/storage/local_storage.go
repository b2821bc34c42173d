// file: internals/helpers/storage/local_storage.go
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
)

// Service menyimpan file di disk publik lokal (padanan Laravel
// Storage::disk('public')). Key selalu memakai '/' dan relatif
// terhadap Root.
type Service struct {
	Root    string
	BaseURL string
}

func NewServiceFromEnv() *Service {
	root := configs.GetEnv("STORAGE_ROOT", "./storage/public")
	base := strings.TrimRight(configs.GetEnv("APP_URL", "http://localhost:3000"), "/") + "/storage"
	return &Service{Root: root, BaseURL: base}
}

func (s *Service) fullPath(key string) string {
	return filepath.Join(s.Root, filepath.FromSlash(path.Clean("/"+key)))
}

// SaveWebP mendecode upload, mengencode ulang sebagai WebP, lalu
// menyimpannya di bawah keyPrefix dengan nama acak. Mengembalikan key
// yang tersimpan.
func (s *Service) SaveWebP(fh *multipart.FileHeader, keyPrefix string) (string, error) {
	img, err := DecodeImage(fh)
	if err != nil {
		return "", err
	}
	data, err := EncodeWebP(img, 1600, 85)
	if err != nil {
		return "", fmt.Errorf("encode webp gagal: %w", err)
	}
	key := path.Join(keyPrefix, uuid.NewString()+".webp")
	if err := s.SaveBytes(key, data); err != nil {
		return "", err
	}
	return key, nil
}

func (s *Service) SaveBytes(key string, data []byte) error {
	full := s.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

// Delete menghapus file; key yang sudah tidak ada bukan error.
func (s *Service) Delete(key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	err := os.Remove(s.fullPath(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Service) Exists(key string) bool {
	if strings.TrimSpace(key) == "" {
		return false
	}
	info, err := os.Stat(s.fullPath(key))
	return err == nil && !info.IsDir()
}

// Path mengembalikan path absolut di disk (untuk response file).
func (s *Service) Path(key string) string {
	return s.fullPath(key)
}

// PublicURL padanan asset('storage/'.$path) pada API lama.
func (s *Service) PublicURL(key string) string {
	return s.BaseURL + "/" + strings.TrimLeft(path.Clean("/"+key), "/")
}
