// file: internals/features/settings/service/gorm_store.go
package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/settings/model"
)

type GormSettingStore struct {
	db *gorm.DB
}

func NewGormSettingStore(db *gorm.DB) *GormSettingStore { return &GormSettingStore{db: db} }

func (s *GormSettingStore) LoadAll(ctx context.Context) (map[string]*string, error) {
	var rows []model.SettingModel
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	values := make(map[string]*string, len(rows))
	for _, row := range rows {
		values[row.SettingKey] = row.SettingValue
	}
	return values, nil
}

func (s *GormSettingStore) KeyExists(ctx context.Context, key string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&model.SettingModel{}).
		Where("setting_key = ?", key).
		Count(&n).Error
	return n > 0, err
}

func (s *GormSettingStore) Upsert(ctx context.Context, key string, value *string) error {
	row := model.SettingModel{SettingKey: key, SettingValue: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_updated_at"}),
		}).
		Create(&row).Error
}

// UpdateExisting memperbarui key yang sudah ada saja. false bila key
// tidak dikenal.
func (s *GormSettingStore) UpdateExisting(ctx context.Context, key string, value *string) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.SettingModel{}).
		Where("setting_key = ?", key).
		Update("setting_value", value)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
