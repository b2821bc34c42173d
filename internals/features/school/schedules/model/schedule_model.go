// file: internals/features/school/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassScheduleModel: satu dokumen jadwal mingguan milik satu kelas.
type ClassScheduleModel struct {
	ClassScheduleID       uuid.UUID `json:"class_schedule_id" gorm:"type:uuid;primaryKey;column:class_schedule_id;default:gen_random_uuid()"`
	ClassScheduleClassID  uuid.UUID `json:"class_schedule_class_id" gorm:"type:uuid;not null;index;column:class_schedule_class_id"`
	ClassScheduleYear     string    `json:"class_schedule_year" gorm:"type:varchar(20);not null;column:class_schedule_year"`
	ClassScheduleSemester string    `json:"class_schedule_semester" gorm:"type:varchar(20);not null;column:class_schedule_semester"`
	ClassScheduleIsActive bool      `json:"class_schedule_is_active" gorm:"not null;default:true;column:class_schedule_is_active"`

	ClassScheduleCreatedAt time.Time `json:"class_schedule_created_at" gorm:"column:class_schedule_created_at;autoCreateTime"`
	ClassScheduleUpdatedAt time.Time `json:"class_schedule_updated_at" gorm:"column:class_schedule_updated_at;autoUpdateTime"`

	DailySchedules []DailyScheduleModel `json:"daily_schedules,omitempty" gorm:"foreignKey:DailyScheduleClassScheduleID;references:ClassScheduleID"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

// DailyScheduleModel: slot-slot pelajaran satu kelas pada satu hari.
// Hari tidak dipaksa unik per class_schedule (mengikuti skema lama).
type DailyScheduleModel struct {
	DailyScheduleID              uuid.UUID `json:"daily_schedule_id" gorm:"type:uuid;primaryKey;column:daily_schedule_id;default:gen_random_uuid()"`
	DailyScheduleClassScheduleID uuid.UUID `json:"daily_schedule_class_schedule_id" gorm:"type:uuid;not null;index;column:daily_schedule_class_schedule_id"`
	DailyScheduleDay             string    `json:"daily_schedule_day" gorm:"type:varchar(10);not null;column:daily_schedule_day"`

	DailyScheduleCreatedAt time.Time `json:"daily_schedule_created_at" gorm:"column:daily_schedule_created_at;autoCreateTime"`
	DailyScheduleUpdatedAt time.Time `json:"daily_schedule_updated_at" gorm:"column:daily_schedule_updated_at;autoUpdateTime"`

	ScheduleItems []ScheduleItemModel `json:"schedule_items,omitempty" gorm:"foreignKey:ScheduleItemDailyScheduleID;references:DailyScheduleID"`
}

func (DailyScheduleModel) TableName() string { return "daily_schedules" }

// ScheduleItemModel: satu slot pelajaran {mapel, guru, jam, ruang}.
// Record absensi merujuk ke id item ini.
type ScheduleItemModel struct {
	ScheduleItemID              uuid.UUID  `json:"schedule_item_id" gorm:"type:uuid;primaryKey;column:schedule_item_id;default:gen_random_uuid()"`
	ScheduleItemDailyScheduleID uuid.UUID  `json:"schedule_item_daily_schedule_id" gorm:"type:uuid;not null;index;column:schedule_item_daily_schedule_id"`
	ScheduleItemSubjectID       uuid.UUID  `json:"schedule_item_subject_id" gorm:"type:uuid;not null;column:schedule_item_subject_id"`
	ScheduleItemTeacherID       uuid.UUID  `json:"schedule_item_teacher_id" gorm:"type:uuid;not null;index;column:schedule_item_teacher_id"`
	ScheduleItemRoomID          *uuid.UUID `json:"schedule_item_room_id,omitempty" gorm:"type:uuid;column:schedule_item_room_id"`
	ScheduleItemStartTime       string     `json:"schedule_item_start_time" gorm:"type:varchar(5);not null;column:schedule_item_start_time"`
	ScheduleItemEndTime         string     `json:"schedule_item_end_time" gorm:"type:varchar(5);not null;column:schedule_item_end_time"`

	ScheduleItemCreatedAt time.Time `json:"schedule_item_created_at" gorm:"column:schedule_item_created_at;autoCreateTime"`
	ScheduleItemUpdatedAt time.Time `json:"schedule_item_updated_at" gorm:"column:schedule_item_updated_at;autoUpdateTime"`
}

func (ScheduleItemModel) TableName() string { return "schedule_items" }
