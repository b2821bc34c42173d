// file: internals/features/school/attendance/service/manual_attendance.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/school/attendance/model"
)

var (
	ErrScheduleNotFound = errors.New("jadwal tidak ditemukan")
	ErrNotScheduleOwner = errors.New("guru tidak memiliki jadwal ini")
)

// ScheduleOwnership mencari pemilik (guru) sebuah slot jadwal.
type ScheduleOwnership interface {
	ScheduleTeacherID(ctx context.Context, scheduleID uuid.UUID) (uuid.UUID, bool, error)
}

// AttendanceWriter menyimpan record absensi dengan semantik upsert per
// {siswa, jadwal, tanggal}.
type AttendanceWriter interface {
	Upsert(ctx context.Context, rec *model.AttendanceModel) error
}

type SubmitInput struct {
	StudentID  uuid.UUID
	ScheduleID uuid.UUID
	Status     string // token input, belum dipetakan
	Date       time.Time
	Reason     *string
}

type ManualAttendanceService struct {
	Schedules ScheduleOwnership
	Records   AttendanceWriter
}

func NewManualAttendanceService(schedules ScheduleOwnership, records AttendanceWriter) *ManualAttendanceService {
	return &ManualAttendanceService{Schedules: schedules, Records: records}
}

// Submit memproses input absensi manual dari guru: status dipetakan ke
// token kanonik, kepemilikan jadwal diverifikasi SEBELUM ada yang
// dipersist, lalu record di-upsert (submit kedua menimpa, bukan
// menduplikasi).
func (s *ManualAttendanceService) Submit(ctx context.Context, teacherID uuid.UUID, in SubmitInput) (*model.AttendanceModel, error) {
	status, err := MapStatus(in.Status)
	if err != nil {
		return nil, err
	}

	ownerID, found, err := s.Schedules.ScheduleTeacherID(ctx, in.ScheduleID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrScheduleNotFound
	}
	if ownerID != teacherID {
		return nil, ErrNotScheduleOwner
	}

	rec := &model.AttendanceModel{
		AttendanceStudentID:  in.StudentID,
		AttendanceScheduleID: in.ScheduleID,
		AttendanceDate:       datatypes.Date(in.Date),
		AttendanceStatus:     status,
		AttendanceSource:     model.SourceManual,
		AttendanceReason:     in.Reason,
	}
	if err := s.Records.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
