// file: internals/features/school/masters/majors/model/major_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MajorModel merepresentasikan tabel majors (jurusan / kompetensi keahlian)
type MajorModel struct {
	MajorID       uuid.UUID `json:"major_id" gorm:"type:uuid;primaryKey;column:major_id;default:gen_random_uuid()"`
	MajorCode     string    `json:"major_code" gorm:"type:varchar(20);not null;uniqueIndex;column:major_code"`
	MajorName     string    `json:"major_name" gorm:"type:varchar(100);not null;column:major_name"`
	MajorCategory *string   `json:"major_category,omitempty" gorm:"type:varchar(100);column:major_category"`

	MajorCreatedAt time.Time `json:"major_created_at" gorm:"column:major_created_at;autoCreateTime"`
	MajorUpdatedAt time.Time `json:"major_updated_at" gorm:"column:major_updated_at;autoUpdateTime"`
}

func (MajorModel) TableName() string { return "majors" }
