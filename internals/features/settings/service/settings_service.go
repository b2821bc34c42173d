// file: internals/features/settings/service/settings_service.go
package service

import (
	"context"
	"strings"
	"sync"
)

// derivedURLKeys memetakan key path media ke key URL turunannya.
// Nilai turunan tidak disimpan di DB, dihitung saat baca.
var derivedURLKeys = map[string]string{
	"school_logo":   "school_logo_url",
	"school_mascot": "school_mascot_url",
}

type URLResolver interface {
	PublicURL(key string) string
}

// SettingStore mengabstraksi tabel settings untuk cache dan tes.
type SettingStore interface {
	LoadAll(ctx context.Context) (map[string]*string, error)
	KeyExists(ctx context.Context, key string) (bool, error)
	Upsert(ctx context.Context, key string, value *string) error
	UpdateExisting(ctx context.Context, key string, value *string) (bool, error)
}

// Service adalah cache read-through di atas tabel settings. Semua tulisan
// lewat service ini mem-invalidate cache.
type Service struct {
	store SettingStore

	mu     sync.RWMutex
	loaded bool
	values map[string]*string
}

func NewService(store SettingStore) *Service {
	return &Service{store: store}
}

func (s *Service) Invalidate() {
	s.mu.Lock()
	s.loaded = false
	s.values = nil
	s.mu.Unlock()
}

// All mengembalikan snapshot seluruh setting. Baca pertama memuat dari
// store, baca berikutnya dilayani cache sampai Invalidate.
func (s *Service) All(ctx context.Context) (map[string]*string, error) {
	s.mu.RLock()
	if s.loaded {
		out := cloneValues(s.values)
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		values, err := s.store.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		s.values = values
		s.loaded = true
	}
	return cloneValues(s.values), nil
}

func (s *Service) Get(ctx context.Context, key string) (*string, bool, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, false, err
	}
	v, ok := all[key]
	return v, ok, nil
}

// Set meng-upsert satu key lalu mem-invalidate cache.
func (s *Service) Set(ctx context.Context, key string, value *string) error {
	if err := s.store.Upsert(ctx, key, value); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// BulkUpdate memperbarui HANYA key yang sudah ada; key tak dikenal
// dilewati dan dikembalikan sebagai daftar skipped.
func (s *Service) BulkUpdate(ctx context.Context, updates map[string]*string) (updated []string, skipped []string, err error) {
	for key, value := range updates {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		ok, err := s.store.UpdateExisting(ctx, key, value)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			updated = append(updated, key)
		} else {
			skipped = append(skipped, key)
		}
	}
	if len(updated) > 0 {
		s.Invalidate()
	}
	return updated, skipped, nil
}

// ExpandURLs menambahkan key *_url turunan untuk path media yang terisi.
// Map masukan tidak diubah.
func ExpandURLs(values map[string]*string, resolver URLResolver) map[string]*string {
	out := cloneValues(values)
	for srcKey, urlKey := range derivedURLKeys {
		v, ok := out[srcKey]
		if !ok || v == nil || strings.TrimSpace(*v) == "" {
			continue
		}
		u := resolver.PublicURL(*v)
		out[urlKey] = &u
	}
	return out
}

func cloneValues(in map[string]*string) map[string]*string {
	out := make(map[string]*string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
