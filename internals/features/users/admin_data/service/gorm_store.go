// file: internals/features/users/admin_data/service/gorm_store.go
package service

import (
	"context"

	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/users/model"
)

// GormIdentityStore mengecek identitas langsung ke tabel users /
// student_profiles / teacher_profiles.
type GormIdentityStore struct {
	DB *gorm.DB
}

func NewGormIdentityStore(db *gorm.DB) *GormIdentityStore {
	return &GormIdentityStore{DB: db}
}

func (s *GormIdentityStore) exists(ctx context.Context, model any, cond string, val string) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(model).Where(cond, val).Count(&n).Error
	return n > 0, err
}

func (s *GormIdentityStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, &userModel.UserModel{}, "user_username = ?", username)
}

func (s *GormIdentityStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, &userModel.UserModel{}, "user_email = ?", email)
}

func (s *GormIdentityStore) NISNExists(ctx context.Context, nisn string) (bool, error) {
	return s.exists(ctx, &userModel.StudentProfileModel{}, "student_profile_nisn = ?", nisn)
}

func (s *GormIdentityStore) NIPExists(ctx context.Context, nip string) (bool, error) {
	return s.exists(ctx, &userModel.TeacherProfileModel{}, "teacher_profile_nip = ?", nip)
}
