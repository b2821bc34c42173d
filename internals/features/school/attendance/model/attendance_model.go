// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status kanonik yang tersimpan di kolom attendance_status.
const (
	StatusPresent    = "present"
	StatusSick       = "sick"
	StatusPermission = "permission"
	StatusAbsent     = "absent"
	StatusReturn     = "return" // pulang sebelum waktunya
)

// Sumber record absensi.
const (
	SourceManual    = "manual"
	SourceAutomatic = "automatic"
)

// AttendanceModel merepresentasikan tabel attendances. Satu record per
// {siswa, slot jadwal, tanggal}; submit ulang menimpa, bukan menduplikasi.
type AttendanceModel struct {
	AttendanceID         uuid.UUID      `json:"attendance_id" gorm:"type:uuid;primaryKey;column:attendance_id;default:gen_random_uuid()"`
	AttendanceStudentID  uuid.UUID      `json:"attendance_student_id" gorm:"type:uuid;not null;uniqueIndex:uq_attendance_key;column:attendance_student_id"`
	AttendanceScheduleID uuid.UUID      `json:"attendance_schedule_id" gorm:"type:uuid;not null;uniqueIndex:uq_attendance_key;column:attendance_schedule_id"`
	AttendanceDate       datatypes.Date `json:"attendance_date" gorm:"type:date;not null;uniqueIndex:uq_attendance_key;column:attendance_date"`
	AttendanceStatus     string         `json:"attendance_status" gorm:"type:varchar(20);not null;column:attendance_status"`
	AttendanceSource     string         `json:"attendance_source" gorm:"type:varchar(20);not null;default:'automatic';column:attendance_source"`
	AttendanceReason     *string        `json:"attendance_reason,omitempty" gorm:"type:text;column:attendance_reason"`

	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;autoCreateTime"`
	AttendanceUpdatedAt time.Time `json:"attendance_updated_at" gorm:"column:attendance_updated_at;autoUpdateTime"`
}

func (AttendanceModel) TableName() string { return "attendances" }
