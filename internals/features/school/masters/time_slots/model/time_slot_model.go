// file: internals/features/school/masters/time_slots/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlotModel merepresentasikan tabel time_slots (jam pelajaran).
// Waktu disimpan sebagai "HH:MM".
type TimeSlotModel struct {
	TimeSlotID        uuid.UUID `json:"time_slot_id" gorm:"type:uuid;primaryKey;column:time_slot_id;default:gen_random_uuid()"`
	TimeSlotName      string    `json:"time_slot_name" gorm:"type:varchar(50);not null;column:time_slot_name"`
	TimeSlotStartTime string    `json:"time_slot_start_time" gorm:"type:varchar(5);not null;column:time_slot_start_time"`
	TimeSlotEndTime   string    `json:"time_slot_end_time" gorm:"type:varchar(5);not null;column:time_slot_end_time"`

	TimeSlotCreatedAt time.Time `json:"time_slot_created_at" gorm:"column:time_slot_created_at;autoCreateTime"`
	TimeSlotUpdatedAt time.Time `json:"time_slot_updated_at" gorm:"column:time_slot_updated_at;autoUpdateTime"`
}

func (TimeSlotModel) TableName() string { return "time_slots" }
