// file: internals/features/school/masters/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectModel merepresentasikan tabel subjects (mata pelajaran)
type SubjectModel struct {
	SubjectID   uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`
	SubjectCode string    `json:"subject_code" gorm:"type:varchar(20);not null;uniqueIndex;column:subject_code"`
	SubjectName string    `json:"subject_name" gorm:"type:varchar(100);not null;column:subject_name"`

	SubjectCreatedAt time.Time `json:"subject_created_at" gorm:"column:subject_created_at;autoCreateTime"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at" gorm:"column:subject_updated_at;autoUpdateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }
