// file: internals/features/users/admin_data/service/duplicate_checker.go
package service

import (
	"context"
	"fmt"
	"strings"
)

// IdentityStore menyediakan cek keberadaan identitas tersimpan.
// Semua cek read-only; pre-check ini advisory, unique constraint di
// database tetap menjadi penjaga kebenaran saat insert.
type IdentityStore interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	NISNExists(ctx context.Context, nisn string) (bool, error)
	NIPExists(ctx context.Context, nip string) (bool, error)
}

type CandidateItem struct {
	Username string
	NISN     string
	NIP      string
	Email    string
}

type DuplicateItem struct {
	Index    int      `json:"index"`
	Username string   `json:"username"`
	Errors   []string `json:"errors"`
}

type DuplicateReport struct {
	HasDuplicates bool            `json:"has_duplicates"`
	Duplicates    []DuplicateItem `json:"duplicates"`
	Message       string          `json:"message"`
}

const (
	msgFound    = "Ditemukan data duplikat."
	msgNotFound = "Tidak ada data duplikat found."
)

type DuplicateChecker struct {
	Store IdentityStore
}

func NewDuplicateChecker(store IdentityStore) *DuplicateChecker {
	return &DuplicateChecker{Store: store}
}

// Check memeriksa tiap item terhadap identitas tersimpan dan
// mengumpulkan SEMUA konflik per item (tanpa prioritas antar jenis).
// NISN/NIP/email kosong tidak ikut dicek.
func (s *DuplicateChecker) Check(ctx context.Context, items []CandidateItem) (DuplicateReport, error) {
	duplicates := []DuplicateItem{}

	for i, item := range items {
		var errs []string

		if ok, err := s.Store.UsernameExists(ctx, item.Username); err != nil {
			return DuplicateReport{}, err
		} else if ok {
			errs = append(errs, fmt.Sprintf("Username '%s' sudah terdaftar.", item.Username))
		}

		if nisn := strings.TrimSpace(item.NISN); nisn != "" {
			if ok, err := s.Store.NISNExists(ctx, nisn); err != nil {
				return DuplicateReport{}, err
			} else if ok {
				errs = append(errs, fmt.Sprintf("NISN '%s' sudah terdaftar.", nisn))
			}
		}

		if nip := strings.TrimSpace(item.NIP); nip != "" {
			if ok, err := s.Store.NIPExists(ctx, nip); err != nil {
				return DuplicateReport{}, err
			} else if ok {
				errs = append(errs, fmt.Sprintf("NIP '%s' sudah terdaftar.", nip))
			}
		}

		if email := strings.TrimSpace(item.Email); email != "" {
			if ok, err := s.Store.EmailExists(ctx, email); err != nil {
				return DuplicateReport{}, err
			} else if ok {
				errs = append(errs, fmt.Sprintf("Email '%s' sudah terdaftar.", email))
			}
		}

		if len(errs) > 0 {
			duplicates = append(duplicates, DuplicateItem{
				Index:    i,
				Username: item.Username,
				Errors:   errs,
			})
		}
	}

	report := DuplicateReport{
		HasDuplicates: len(duplicates) > 0,
		Duplicates:    duplicates,
		Message:       msgNotFound,
	}
	if report.HasDuplicates {
		report.Message = msgFound
	}
	return report, nil
}
