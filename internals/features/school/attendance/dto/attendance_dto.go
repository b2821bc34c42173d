// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type ManualAttendanceRequest struct {
	AttendeeType string    `json:"attendee_type" validate:"required,oneof=student"`
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	ScheduleID   uuid.UUID `json:"schedule_id" validate:"required"`
	Status       string    `json:"status" validate:"required"`
	Date         string    `json:"date" validate:"required,datetime=2006-01-02"`
	Reason       *string   `json:"reason" validate:"omitempty,max=500"`
}

var ManualAttendanceMessages = map[string]string{
	"attendee_type.required": "Tipe peserta wajib diisi",
	"attendee_type.oneof":    "Tipe peserta harus student",
	"student_id.required":    "Siswa wajib diisi",
	"schedule_id.required":   "Jadwal wajib diisi",
	"status.required":        "Status kehadiran wajib diisi",
	"date.required":          "Tanggal wajib diisi",
	"date.datetime":          "Format tanggal harus YYYY-MM-DD",
}

func (r ManualAttendanceRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}
