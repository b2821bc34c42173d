// file: internals/features/school/masters/subjects/dto/subject_dto.go
package dto

import "sekolahku_backend/internals/features/school/masters/subjects/model"

type CreateSubjectRequest struct {
	Code string `json:"code" validate:"required,max=20"`
	Name string `json:"name" validate:"required,max=100"`
}

var CreateSubjectMessages = map[string]string{
	"code.required": "Kode mata pelajaran wajib diisi.",
	"code.max":      "Kode mata pelajaran maksimal 20 karakter.",
	"name.required": "Nama mata pelajaran wajib diisi.",
	"name.max":      "Nama mata pelajaran maksimal 100 karakter.",
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectCode: r.Code,
		SubjectName: r.Name,
	}
}

type UpdateSubjectRequest struct {
	Code *string `json:"code" validate:"omitempty,max=20"`
	Name *string `json:"name" validate:"omitempty,max=100"`
}

var UpdateSubjectMessages = map[string]string{
	"code.max": "Kode mata pelajaran maksimal 20 karakter.",
	"name.max": "Nama mata pelajaran maksimal 100 karakter.",
}

func (r UpdateSubjectRequest) ApplyPatch(m *model.SubjectModel) {
	if r.Code != nil {
		m.SubjectCode = *r.Code
	}
	if r.Name != nil {
		m.SubjectName = *r.Name
	}
}
