// file: internals/features/school/attendance/service/gorm_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/school/attendance/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
)

// GormScheduleStore membaca pemilik slot jadwal dari schedule_items.
type GormScheduleStore struct {
	DB *gorm.DB
}

func NewGormScheduleStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{DB: db}
}

func (s *GormScheduleStore) ScheduleTeacherID(ctx context.Context, scheduleID uuid.UUID) (uuid.UUID, bool, error) {
	var item scheduleModel.ScheduleItemModel
	err := s.DB.WithContext(ctx).
		Select("schedule_item_teacher_id").
		Where("schedule_item_id = ?", scheduleID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return item.ScheduleItemTeacherID, true, nil
}

// GormAttendanceStore menulis record absensi; upsert pada key
// {siswa, jadwal, tanggal}.
type GormAttendanceStore struct {
	DB *gorm.DB
}

func NewGormAttendanceStore(db *gorm.DB) *GormAttendanceStore {
	return &GormAttendanceStore{DB: db}
}

func (s *GormAttendanceStore) Upsert(ctx context.Context, rec *model.AttendanceModel) error {
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_student_id"},
			{Name: "attendance_schedule_id"},
			{Name: "attendance_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status",
			"attendance_source",
			"attendance_reason",
			"attendance_updated_at",
		}),
	}).Create(rec).Error
}
