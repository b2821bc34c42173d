// file: internals/features/users/users/model/teacher_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherProfileModel merepresentasikan tabel teacher_profiles.
// Seorang guru maksimal menjadi wali satu kelas (homeroom_class_id unik).
type TeacherProfileModel struct {
	TeacherProfileID              uuid.UUID  `json:"teacher_profile_id" gorm:"type:uuid;primaryKey;column:teacher_profile_id;default:gen_random_uuid()"`
	TeacherProfileUserID          uuid.UUID  `json:"teacher_profile_user_id" gorm:"type:uuid;not null;uniqueIndex;column:teacher_profile_user_id"`
	TeacherProfileNIP             *string    `json:"teacher_profile_nip,omitempty" gorm:"type:varchar(30);uniqueIndex;column:teacher_profile_nip"`
	TeacherProfileHomeroomClassID *uuid.UUID `json:"teacher_profile_homeroom_class_id,omitempty" gorm:"type:uuid;uniqueIndex;column:teacher_profile_homeroom_class_id"`

	TeacherProfileCreatedAt time.Time `json:"teacher_profile_created_at" gorm:"column:teacher_profile_created_at;autoCreateTime"`
	TeacherProfileUpdatedAt time.Time `json:"teacher_profile_updated_at" gorm:"column:teacher_profile_updated_at;autoUpdateTime"`

	User *UserModel `json:"user,omitempty" gorm:"foreignKey:TeacherProfileUserID;references:UserID"`
}

func (TeacherProfileModel) TableName() string { return "teacher_profiles" }
