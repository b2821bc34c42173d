// file: internals/features/users/devices/model/device_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel merepresentasikan tabel devices (perangkat mobile yang
// terdaftar per user). Siswa hanya boleh punya satu device aktif.
type DeviceModel struct {
	DeviceID         uuid.UUID  `json:"device_id" gorm:"type:uuid;primaryKey;column:device_id;default:gen_random_uuid()"`
	DeviceUserID     uuid.UUID  `json:"device_user_id" gorm:"type:uuid;not null;uniqueIndex:uq_device_user_identifier;column:device_user_id"`
	DeviceIdentifier string     `json:"device_identifier" gorm:"type:varchar(100);not null;uniqueIndex:uq_device_user_identifier;column:device_identifier"`
	DeviceName       *string    `json:"device_name,omitempty" gorm:"type:varchar(255);column:device_name"`
	DevicePlatform   *string    `json:"device_platform,omitempty" gorm:"type:varchar(100);column:device_platform"`
	DeviceActive     bool       `json:"device_active" gorm:"not null;default:true;column:device_active"`
	DeviceLastUsedAt *time.Time `json:"device_last_used_at,omitempty" gorm:"column:device_last_used_at"`

	DeviceCreatedAt time.Time `json:"device_created_at" gorm:"column:device_created_at;autoCreateTime"`
	DeviceUpdatedAt time.Time `json:"device_updated_at" gorm:"column:device_updated_at;autoUpdateTime"`
}

func (DeviceModel) TableName() string { return "devices" }
