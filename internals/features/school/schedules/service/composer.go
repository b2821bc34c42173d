// file: internals/features/school/schedules/service/composer.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/schedules/model"
	helper "sekolahku_backend/internals/helpers"
)

var ErrEndNotAfterStart = errors.New("waktu selesai harus setelah waktu mulai")

type ItemInput struct {
	SubjectID uuid.UUID
	TeacherID uuid.UUID
	RoomID    *uuid.UUID
	StartTime string
	EndTime   string
}

type DayInput struct {
	Day   string
	Items []ItemInput
}

// BuildScheduleTree memvalidasi struktur mingguan dan menyusun pohon
// model siap simpan. Hanya jam per item yang divalidasi (format HH:MM,
// end ketat setelah start); bentrok antar item (guru/ruang dobel) TIDAK
// dicek, mengikuti perilaku lama.
func BuildScheduleTree(classID uuid.UUID, year, semester string, week []DayInput) (*model.ClassScheduleModel, error) {
	sched := &model.ClassScheduleModel{
		ClassScheduleClassID:  classID,
		ClassScheduleYear:     year,
		ClassScheduleSemester: semester,
		ClassScheduleIsActive: true,
	}

	for _, day := range week {
		daily := model.DailyScheduleModel{DailyScheduleDay: day.Day}
		for i, item := range day.Items {
			ok, err := helper.ClockAfter(item.StartTime, item.EndTime)
			if err != nil {
				return nil, fmt.Errorf("jadwal %s item %d: %w", day.Day, i+1, err)
			}
			if !ok {
				return nil, fmt.Errorf("jadwal %s item %d: %w", day.Day, i+1, ErrEndNotAfterStart)
			}
			daily.ScheduleItems = append(daily.ScheduleItems, model.ScheduleItemModel{
				ScheduleItemSubjectID: item.SubjectID,
				ScheduleItemTeacherID: item.TeacherID,
				ScheduleItemRoomID:    item.RoomID,
				ScheduleItemStartTime: item.StartTime,
				ScheduleItemEndTime:   item.EndTime,
			})
		}
		sched.DailySchedules = append(sched.DailySchedules, daily)
	}
	return sched, nil
}

// ReplaceClassSchedule mengganti SELURUH jadwal satu kelas dalam satu
// transaksi: pohon lama dibuang, struktur kiriman disimpan baru. Tidak
// ada semantik merge/diff.
func ReplaceClassSchedule(ctx context.Context, db *gorm.DB, classID uuid.UUID, tree *model.ClassScheduleModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var oldIDs []uuid.UUID
		if err := tx.Model(&model.ClassScheduleModel{}).
			Where("class_schedule_class_id = ?", classID).
			Pluck("class_schedule_id", &oldIDs).Error; err != nil {
			return err
		}

		if len(oldIDs) > 0 {
			var dailyIDs []uuid.UUID
			if err := tx.Model(&model.DailyScheduleModel{}).
				Where("daily_schedule_class_schedule_id IN ?", oldIDs).
				Pluck("daily_schedule_id", &dailyIDs).Error; err != nil {
				return err
			}
			if len(dailyIDs) > 0 {
				if err := tx.Where("schedule_item_daily_schedule_id IN ?", dailyIDs).
					Delete(&model.ScheduleItemModel{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("daily_schedule_class_schedule_id IN ?", oldIDs).
				Delete(&model.DailyScheduleModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("class_schedule_id IN ?", oldIDs).
				Delete(&model.ClassScheduleModel{}).Error; err != nil {
				return err
			}
		}

		return tx.Create(tree).Error
	})
}
