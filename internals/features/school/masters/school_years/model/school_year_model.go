// file: internals/features/school/masters/school_years/model/school_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolYearModel merepresentasikan tabel school_years (tahun ajaran)
type SchoolYearModel struct {
	SchoolYearID        uuid.UUID `json:"school_year_id" gorm:"type:uuid;primaryKey;column:school_year_id;default:gen_random_uuid()"`
	SchoolYearName      string    `json:"school_year_name" gorm:"type:varchar(20);not null;column:school_year_name"`
	SchoolYearStartYear int       `json:"school_year_start_year" gorm:"not null;column:school_year_start_year"`
	SchoolYearEndYear   int       `json:"school_year_end_year" gorm:"not null;column:school_year_end_year"`
	SchoolYearActive    bool      `json:"school_year_active" gorm:"not null;default:false;column:school_year_active"`

	SchoolYearCreatedAt time.Time `json:"school_year_created_at" gorm:"column:school_year_created_at;autoCreateTime"`
	SchoolYearUpdatedAt time.Time `json:"school_year_updated_at" gorm:"column:school_year_updated_at;autoUpdateTime"`
}

func (SchoolYearModel) TableName() string { return "school_years" }
