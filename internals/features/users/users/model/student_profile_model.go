// file: internals/features/users/users/model/student_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfileModel merepresentasikan tabel student_profiles.
// NISN unik pada subset siswa, boleh kosong.
type StudentProfileModel struct {
	StudentProfileID      uuid.UUID  `json:"student_profile_id" gorm:"type:uuid;primaryKey;column:student_profile_id;default:gen_random_uuid()"`
	StudentProfileUserID  uuid.UUID  `json:"student_profile_user_id" gorm:"type:uuid;not null;uniqueIndex;column:student_profile_user_id"`
	StudentProfileNISN    *string    `json:"student_profile_nisn,omitempty" gorm:"type:varchar(20);uniqueIndex;column:student_profile_nisn"`
	StudentProfileClassID *uuid.UUID `json:"student_profile_class_id,omitempty" gorm:"type:uuid;column:student_profile_class_id"`

	StudentProfileCreatedAt time.Time `json:"student_profile_created_at" gorm:"column:student_profile_created_at;autoCreateTime"`
	StudentProfileUpdatedAt time.Time `json:"student_profile_updated_at" gorm:"column:student_profile_updated_at;autoUpdateTime"`

	User *UserModel `json:"user,omitempty" gorm:"foreignKey:StudentProfileUserID;references:UserID"`
}

func (StudentProfileModel) TableName() string { return "student_profiles" }
