// file: internals/features/school/masters/classes/service/homeroom.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/users/model"
)

var ErrTeacherNotFound = errors.New("profil guru tidak ditemukan")

// TeacherHomeroomStore mengabstraksi kolom wali kelas di teacher_profiles.
type TeacherHomeroomStore interface {
	TeacherExists(ctx context.Context, teacherID uuid.UUID) (bool, error)
	// ClearHomeroom melepas slot wali untuk satu kelas, siapa pun pemegangnya.
	ClearHomeroom(ctx context.Context, classID uuid.UUID) error
	SetHomeroom(ctx context.Context, teacherID, classID uuid.UUID) error
}

// AssignHomeroom memindahkan slot wali kelas ke guru lain: pemegang lama
// dilepas dulu, baru guru baru dipasang. Urutan ini penting karena kolom
// homeroom_class_id unik; tanpa clear dulu, set akan bentrok.
func AssignHomeroom(ctx context.Context, store TeacherHomeroomStore, teacherID, classID uuid.UUID) error {
	ok, err := store.TeacherExists(ctx, teacherID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTeacherNotFound
	}
	if err := store.ClearHomeroom(ctx, classID); err != nil {
		return err
	}
	return store.SetHomeroom(ctx, teacherID, classID)
}

type GormHomeroomStore struct{ tx *gorm.DB }

func NewGormHomeroomStore(tx *gorm.DB) *GormHomeroomStore { return &GormHomeroomStore{tx: tx} }

func (s *GormHomeroomStore) TeacherExists(ctx context.Context, teacherID uuid.UUID) (bool, error) {
	var n int64
	err := s.tx.WithContext(ctx).
		Model(&userModel.TeacherProfileModel{}).
		Where("teacher_profile_id = ?", teacherID).
		Count(&n).Error
	return n > 0, err
}

func (s *GormHomeroomStore) ClearHomeroom(ctx context.Context, classID uuid.UUID) error {
	return s.tx.WithContext(ctx).
		Model(&userModel.TeacherProfileModel{}).
		Where("teacher_profile_homeroom_class_id = ?", classID).
		Update("teacher_profile_homeroom_class_id", nil).Error
}

func (s *GormHomeroomStore) SetHomeroom(ctx context.Context, teacherID, classID uuid.UUID) error {
	return s.tx.WithContext(ctx).
		Model(&userModel.TeacherProfileModel{}).
		Where("teacher_profile_id = ?", teacherID).
		Update("teacher_profile_homeroom_class_id", classID).Error
}
