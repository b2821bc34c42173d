// file: internals/features/school/masters/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomModel merepresentasikan tabel rooms (ruang kelas / lab)
type RoomModel struct {
	RoomID       uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`
	RoomName     string    `json:"room_name" gorm:"type:varchar(100);not null;column:room_name"`
	RoomCode     *string   `json:"room_code,omitempty" gorm:"type:varchar(20);uniqueIndex;column:room_code"`
	RoomCapacity *int      `json:"room_capacity,omitempty" gorm:"column:room_capacity"`

	RoomCreatedAt time.Time `json:"room_created_at" gorm:"column:room_created_at;autoCreateTime"`
	RoomUpdatedAt time.Time `json:"room_updated_at" gorm:"column:room_updated_at;autoUpdateTime"`
}

func (RoomModel) TableName() string { return "rooms" }
