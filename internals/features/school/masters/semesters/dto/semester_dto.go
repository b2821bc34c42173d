// file: internals/features/school/masters/semesters/dto/semester_dto.go
package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/masters/semesters/model"
)

type CreateSemesterRequest struct {
	Name         string     `json:"name" validate:"required,oneof=ganjil genap"`
	SchoolYearID *uuid.UUID `json:"school_year_id"`
	Active       bool       `json:"active"`
}

var CreateSemesterMessages = map[string]string{
	"name.required": "Nama semester wajib diisi.",
	"name.oneof":    "Semester harus ganjil atau genap.",
}

func (r CreateSemesterRequest) ToModel() model.SemesterModel {
	return model.SemesterModel{
		SemesterName:         r.Name,
		SemesterSchoolYearID: r.SchoolYearID,
		SemesterActive:       r.Active,
	}
}

type UpdateSemesterRequest struct {
	Name         *string    `json:"name" validate:"omitempty,oneof=ganjil genap"`
	SchoolYearID *uuid.UUID `json:"school_year_id"`
	Active       *bool      `json:"active"`
}

var UpdateSemesterMessages = map[string]string{
	"name.oneof": "Semester harus ganjil atau genap.",
}

func (r UpdateSemesterRequest) ApplyPatch(m *model.SemesterModel) {
	if r.Name != nil {
		m.SemesterName = *r.Name
	}
	if r.SchoolYearID != nil {
		m.SemesterSchoolYearID = r.SchoolYearID
	}
	if r.Active != nil {
		m.SemesterActive = *r.Active
	}
}
