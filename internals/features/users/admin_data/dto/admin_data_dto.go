// file: internals/features/users/admin_data/dto/admin_data_dto.go
package dto

import (
	"sekolahku_backend/internals/features/users/admin_data/service"
)

type CandidateItemRequest struct {
	Username string `json:"username" validate:"required"`
	NISN     string `json:"nisn" validate:"omitempty"`
	NIP      string `json:"nip" validate:"omitempty"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type ValidateDuplicatesRequest struct {
	Items []CandidateItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Pesan validasi mengikuti API lama.
var ValidateDuplicatesMessages = map[string]string{
	"items.required":    "Daftar item wajib diisi",
	"items.min":         "Daftar item minimal berisi 1 data",
	"username.required": "Username wajib diisi",
	"email.email":       "Format email tidak valid",
}

func (r ValidateDuplicatesRequest) ToCandidates() []service.CandidateItem {
	out := make([]service.CandidateItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, service.CandidateItem{
			Username: it.Username,
			NISN:     it.NISN,
			NIP:      it.NIP,
			Email:    it.Email,
		})
	}
	return out
}
