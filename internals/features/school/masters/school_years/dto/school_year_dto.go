// file: internals/features/school/masters/school_years/dto/school_year_dto.go
package dto

import "sekolahku_backend/internals/features/school/masters/school_years/model"

type CreateSchoolYearRequest struct {
	Name      string `json:"name" validate:"required,max=20"`
	StartYear int    `json:"start_year" validate:"required,min=2000"`
	EndYear   int    `json:"end_year" validate:"required,gtefield=StartYear"`
	Active    bool   `json:"active"`
}

var CreateSchoolYearMessages = map[string]string{
	"name.required":       "Nama tahun ajaran wajib diisi.",
	"name.max":            "Nama tahun ajaran maksimal 20 karakter.",
	"start_year.required": "Tahun mulai wajib diisi.",
	"start_year.min":      "Tahun mulai tidak valid.",
	"end_year.required":   "Tahun selesai wajib diisi.",
	"end_year.gtefield":   "Tahun selesai tidak boleh sebelum tahun mulai.",
}

func (r CreateSchoolYearRequest) ToModel() model.SchoolYearModel {
	return model.SchoolYearModel{
		SchoolYearName:      r.Name,
		SchoolYearStartYear: r.StartYear,
		SchoolYearEndYear:   r.EndYear,
		SchoolYearActive:    r.Active,
	}
}

type UpdateSchoolYearRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=20"`
	StartYear *int    `json:"start_year" validate:"omitempty,min=2000"`
	EndYear   *int    `json:"end_year"`
	Active    *bool   `json:"active"`
}

var UpdateSchoolYearMessages = map[string]string{
	"name.max":       "Nama tahun ajaran maksimal 20 karakter.",
	"start_year.min": "Tahun mulai tidak valid.",
}

func (r UpdateSchoolYearRequest) ApplyPatch(m *model.SchoolYearModel) {
	if r.Name != nil {
		m.SchoolYearName = *r.Name
	}
	if r.StartYear != nil {
		m.SchoolYearStartYear = *r.StartYear
	}
	if r.EndYear != nil {
		m.SchoolYearEndYear = *r.EndYear
	}
	if r.Active != nil {
		m.SchoolYearActive = *r.Active
	}
}
