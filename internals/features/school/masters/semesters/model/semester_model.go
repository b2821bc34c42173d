// file: internals/features/school/masters/semesters/model/semester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SemesterModel merepresentasikan tabel semesters (ganjil/genap per tahun ajaran)
type SemesterModel struct {
	SemesterID           uuid.UUID  `json:"semester_id" gorm:"type:uuid;primaryKey;column:semester_id;default:gen_random_uuid()"`
	SemesterName         string     `json:"semester_name" gorm:"type:varchar(20);not null;column:semester_name"`
	SemesterSchoolYearID *uuid.UUID `json:"semester_school_year_id,omitempty" gorm:"type:uuid;column:semester_school_year_id"`
	SemesterActive       bool       `json:"semester_active" gorm:"not null;default:false;column:semester_active"`

	SemesterCreatedAt time.Time `json:"semester_created_at" gorm:"column:semester_created_at;autoCreateTime"`
	SemesterUpdatedAt time.Time `json:"semester_updated_at" gorm:"column:semester_updated_at;autoUpdateTime"`
}

func (SemesterModel) TableName() string { return "semesters" }
