// file: internals/features/school/masters/classes/dto/class_dto.go
package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/masters/classes/model"
)

type CreateClassRequest struct {
	Grade   string     `json:"grade" validate:"required,max=10"`
	Label   string     `json:"label" validate:"required,max=20"`
	MajorID *uuid.UUID `json:"major_id"`
}

var CreateClassMessages = map[string]string{
	"grade.required": "Tingkat kelas wajib diisi.",
	"grade.max":      "Tingkat kelas maksimal 10 karakter.",
	"label.required": "Label kelas wajib diisi.",
	"label.max":      "Label kelas maksimal 20 karakter.",
}

func (r CreateClassRequest) ToModel() model.ClassModel {
	return model.ClassModel{
		ClassGrade:   r.Grade,
		ClassLabel:   r.Label,
		ClassMajorID: r.MajorID,
	}
}

// UpdateClassRequest: patch parsial, field nil dibiarkan.
type UpdateClassRequest struct {
	Grade   *string    `json:"grade" validate:"omitempty,max=10"`
	Label   *string    `json:"label" validate:"omitempty,max=20"`
	MajorID *uuid.UUID `json:"major_id"`
}

var UpdateClassMessages = map[string]string{
	"grade.max": "Tingkat kelas maksimal 10 karakter.",
	"label.max": "Label kelas maksimal 20 karakter.",
}

func (r UpdateClassRequest) ApplyPatch(m *model.ClassModel) {
	if r.Grade != nil {
		m.ClassGrade = *r.Grade
	}
	if r.Label != nil {
		m.ClassLabel = *r.Label
	}
	if r.MajorID != nil {
		m.ClassMajorID = r.MajorID
	}
}

type AssignHomeroomRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
}

var AssignHomeroomMessages = map[string]string{
	"teacher_id.required": "Guru wali wajib diisi.",
}
