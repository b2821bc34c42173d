// file: internals/features/school/masters/classes/model/class_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	majorModel "sekolahku_backend/internals/features/school/masters/majors/model"
)

// ClassModel merepresentasikan tabel classes (rombongan belajar).
// Wali kelas disimpan di teacher_profiles.teacher_profile_homeroom_class_id.
type ClassModel struct {
	ClassID               uuid.UUID  `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`
	ClassGrade            string     `json:"class_grade" gorm:"type:varchar(10);not null;column:class_grade"`
	ClassLabel            string     `json:"class_label" gorm:"type:varchar(20);not null;column:class_label"`
	ClassMajorID          *uuid.UUID `json:"class_major_id,omitempty" gorm:"type:uuid;column:class_major_id"`
	ClassScheduleImageKey *string    `json:"class_schedule_image_key,omitempty" gorm:"type:text;column:class_schedule_image_key"`

	ClassCreatedAt time.Time `json:"class_created_at" gorm:"column:class_created_at;autoCreateTime"`
	ClassUpdatedAt time.Time `json:"class_updated_at" gorm:"column:class_updated_at;autoUpdateTime"`

	Major *majorModel.MajorModel `json:"major,omitempty" gorm:"foreignKey:ClassMajorID;references:MajorID"`
}

func (ClassModel) TableName() string { return "classes" }

// Name menyusun nama tampilan kelas, mis. "12 RPL 1".
func (m ClassModel) Name() string {
	return strings.TrimSpace(m.ClassGrade + " " + m.ClassLabel)
}
