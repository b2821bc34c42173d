package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentityStore struct {
	usernames map[string]bool
	emails    map[string]bool
	nisns     map[string]bool
	nips      map[string]bool
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{
		usernames: map[string]bool{},
		emails:    map[string]bool{},
		nisns:     map[string]bool{},
		nips:      map[string]bool{},
	}
}

func (f *fakeIdentityStore) UsernameExists(_ context.Context, u string) (bool, error) {
	return f.usernames[u], nil
}
func (f *fakeIdentityStore) EmailExists(_ context.Context, e string) (bool, error) {
	return f.emails[e], nil
}
func (f *fakeIdentityStore) NISNExists(_ context.Context, n string) (bool, error) {
	return f.nisns[n], nil
}
func (f *fakeIdentityStore) NIPExists(_ context.Context, n string) (bool, error) {
	return f.nips[n], nil
}

func TestDuplicateChecker_Check(t *testing.T) {
	store := newFakeIdentityStore()
	store.usernames["budi"] = true
	store.emails["budi@sekolah.id"] = true
	store.nisns["0051234567"] = true
	store.nips["198001012005011001"] = true

	svc := NewDuplicateChecker(store)
	ctx := context.Background()

	t.Run("username terdaftar selalu dilaporkan", func(t *testing.T) {
		report, err := svc.Check(ctx, []CandidateItem{
			{Username: "budi", NISN: "9999999999", Email: "baru@sekolah.id"},
		})
		require.NoError(t, err)
		assert.True(t, report.HasDuplicates)
		require.Len(t, report.Duplicates, 1)
		assert.Equal(t, 0, report.Duplicates[0].Index)
		assert.Equal(t, "budi", report.Duplicates[0].Username)
		assert.Contains(t, report.Duplicates[0].Errors, "Username 'budi' sudah terdaftar.")
		assert.Equal(t, "Ditemukan data duplikat.", report.Message)
	})

	t.Run("nisn dan nip kosong tidak pernah dicek", func(t *testing.T) {
		report, err := svc.Check(ctx, []CandidateItem{
			{Username: "baru", NISN: "", NIP: "  ", Email: ""},
		})
		require.NoError(t, err)
		assert.False(t, report.HasDuplicates)
		assert.Empty(t, report.Duplicates)
		assert.Equal(t, "Tidak ada data duplikat found.", report.Message)
	})

	t.Run("semua konflik satu item dikumpulkan", func(t *testing.T) {
		report, err := svc.Check(ctx, []CandidateItem{
			{Username: "budi", NISN: "0051234567", NIP: "198001012005011001", Email: "budi@sekolah.id"},
		})
		require.NoError(t, err)
		require.Len(t, report.Duplicates, 1)
		assert.Equal(t, []string{
			"Username 'budi' sudah terdaftar.",
			"NISN '0051234567' sudah terdaftar.",
			"NIP '198001012005011001' sudah terdaftar.",
			"Email 'budi@sekolah.id' sudah terdaftar.",
		}, report.Duplicates[0].Errors)
	})

	t.Run("index mengikuti posisi input", func(t *testing.T) {
		report, err := svc.Check(ctx, []CandidateItem{
			{Username: "aman"},
			{Username: "budi"},
			{Username: "aman2", NISN: "0051234567"},
		})
		require.NoError(t, err)
		require.Len(t, report.Duplicates, 2)
		assert.Equal(t, 1, report.Duplicates[0].Index)
		assert.Equal(t, 2, report.Duplicates[1].Index)
	})

	t.Run("tanpa konflik", func(t *testing.T) {
		report, err := svc.Check(ctx, []CandidateItem{
			{Username: "sari", NISN: "1111111111", Email: "sari@sekolah.id"},
		})
		require.NoError(t, err)
		assert.False(t, report.HasDuplicates)
		assert.Empty(t, report.Duplicates)
	})
}
