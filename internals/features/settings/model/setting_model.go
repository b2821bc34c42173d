// file: internals/features/settings/model/setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingModel merepresentasikan tabel settings: key→value datar tanpa
// skema per key. Konsumen meng-handle key tertentu secara khusus
// (mis. path media yang butuh ekspansi URL).
type SettingModel struct {
	SettingID    uuid.UUID `json:"setting_id" gorm:"type:uuid;primaryKey;column:setting_id;default:gen_random_uuid()"`
	SettingKey   string    `json:"setting_key" gorm:"type:varchar(100);not null;uniqueIndex;column:setting_key"`
	SettingValue *string   `json:"setting_value,omitempty" gorm:"type:text;column:setting_value"`

	SettingCreatedAt time.Time `json:"setting_created_at" gorm:"column:setting_created_at;autoCreateTime"`
	SettingUpdatedAt time.Time `json:"setting_updated_at" gorm:"column:setting_updated_at;autoUpdateTime"`
}

func (SettingModel) TableName() string { return "settings" }
