package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingStore struct {
	values   map[string]*string
	loadHits int
}

func newFakeSettingStore(values map[string]*string) *fakeSettingStore {
	if values == nil {
		values = map[string]*string{}
	}
	return &fakeSettingStore{values: values}
}

func (s *fakeSettingStore) LoadAll(context.Context) (map[string]*string, error) {
	s.loadHits++
	out := make(map[string]*string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}

func (s *fakeSettingStore) KeyExists(_ context.Context, key string) (bool, error) {
	_, ok := s.values[key]
	return ok, nil
}

func (s *fakeSettingStore) Upsert(_ context.Context, key string, value *string) error {
	s.values[key] = value
	return nil
}

func (s *fakeSettingStore) UpdateExisting(_ context.Context, key string, value *string) (bool, error) {
	if _, ok := s.values[key]; !ok {
		return false, nil
	}
	s.values[key] = value
	return true, nil
}

type fakeResolver struct{}

func (fakeResolver) PublicURL(key string) string { return "http://cdn.local/storage/" + key }

func strPtr(s string) *string { return &s }

func TestServiceCache(t *testing.T) {
	ctx := context.Background()

	t.Run("repeat reads hit store once", func(t *testing.T) {
		store := newFakeSettingStore(map[string]*string{"school_name": strPtr("SMK 1")})
		svc := NewService(store)

		for i := 0; i < 3; i++ {
			all, err := svc.All(ctx)
			require.NoError(t, err)
			assert.Equal(t, "SMK 1", *all["school_name"])
		}
		assert.Equal(t, 1, store.loadHits)
	})

	t.Run("set invalidates cache", func(t *testing.T) {
		store := newFakeSettingStore(map[string]*string{"school_name": strPtr("SMK 1")})
		svc := NewService(store)

		_, err := svc.All(ctx)
		require.NoError(t, err)
		require.NoError(t, svc.Set(ctx, "school_name", strPtr("SMK 2")))

		v, ok, err := svc.Get(ctx, "school_name")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "SMK 2", *v)
		assert.Equal(t, 2, store.loadHits)
	})

	t.Run("set can introduce a new key", func(t *testing.T) {
		store := newFakeSettingStore(nil)
		svc := NewService(store)

		require.NoError(t, svc.Set(ctx, "school_motto", strPtr("Berakhlak")))
		v, ok, err := svc.Get(ctx, "school_motto")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Berakhlak", *v)
	})
}

func TestBulkUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown keys are skipped, not created", func(t *testing.T) {
		store := newFakeSettingStore(map[string]*string{
			"school_name":  strPtr("SMK 1"),
			"school_motto": nil,
		})
		svc := NewService(store)

		updated, skipped, err := svc.BulkUpdate(ctx, map[string]*string{
			"school_name": strPtr("SMK Baru"),
			"tidak_ada":   strPtr("x"),
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"school_name"}, updated)
		assert.ElementsMatch(t, []string{"tidak_ada"}, skipped)

		_, ok := store.values["tidak_ada"]
		assert.False(t, ok, "key baru tidak boleh dibuat lewat bulk update")
		assert.Equal(t, "SMK Baru", *store.values["school_name"])
	})

	t.Run("existing key can be set to null", func(t *testing.T) {
		store := newFakeSettingStore(map[string]*string{"school_motto": strPtr("Lama")})
		svc := NewService(store)

		updated, _, err := svc.BulkUpdate(ctx, map[string]*string{"school_motto": nil})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"school_motto"}, updated)
		assert.Nil(t, store.values["school_motto"])
	})
}

func TestExpandURLs(t *testing.T) {
	t.Run("filled media paths get derived url keys", func(t *testing.T) {
		values := map[string]*string{
			"school_name": strPtr("SMK 1"),
			"school_logo": strPtr("settings/logo.webp"),
		}
		out := ExpandURLs(values, fakeResolver{})

		require.NotNil(t, out["school_logo_url"])
		assert.Equal(t, "http://cdn.local/storage/settings/logo.webp", *out["school_logo_url"])
		_, ok := out["school_mascot_url"]
		assert.False(t, ok, "path kosong tidak boleh menghasilkan url")

		_, ok = values["school_logo_url"]
		assert.False(t, ok, "map masukan tidak boleh berubah")
	})

	t.Run("empty and nil paths are skipped", func(t *testing.T) {
		values := map[string]*string{
			"school_logo":   strPtr("   "),
			"school_mascot": nil,
		}
		out := ExpandURLs(values, fakeResolver{})
		_, ok := out["school_logo_url"]
		assert.False(t, ok)
		_, ok = out["school_mascot_url"]
		assert.False(t, ok)
	})
}
