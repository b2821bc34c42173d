// file: internals/features/school/masters/majors/dto/major_dto.go
package dto

import "sekolahku_backend/internals/features/school/masters/majors/model"

type CreateMajorRequest struct {
	Code     string  `json:"code" validate:"required,max=20"`
	Name     string  `json:"name" validate:"required,max=100"`
	Category *string `json:"category" validate:"omitempty,max=100"`
}

var CreateMajorMessages = map[string]string{
	"code.required": "Kode jurusan wajib diisi.",
	"code.max":      "Kode jurusan maksimal 20 karakter.",
	"name.required": "Nama jurusan wajib diisi.",
	"name.max":      "Nama jurusan maksimal 100 karakter.",
	"category.max":  "Kategori maksimal 100 karakter.",
}

func (r CreateMajorRequest) ToModel() model.MajorModel {
	return model.MajorModel{
		MajorCode:     r.Code,
		MajorName:     r.Name,
		MajorCategory: r.Category,
	}
}

type UpdateMajorRequest struct {
	Code     *string `json:"code" validate:"omitempty,max=20"`
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Category *string `json:"category" validate:"omitempty,max=100"`
}

var UpdateMajorMessages = map[string]string{
	"code.max":     "Kode jurusan maksimal 20 karakter.",
	"name.max":     "Nama jurusan maksimal 100 karakter.",
	"category.max": "Kategori maksimal 100 karakter.",
}

func (r UpdateMajorRequest) ApplyPatch(m *model.MajorModel) {
	if r.Code != nil {
		m.MajorCode = *r.Code
	}
	if r.Name != nil {
		m.MajorName = *r.Name
	}
	if r.Category != nil {
		m.MajorCategory = r.Category
	}
}
