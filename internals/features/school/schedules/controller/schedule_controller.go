// file: internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/masters/classes/model"
	dto "sekolahku_backend/internals/features/school/schedules/dto"
	"sekolahku_backend/internals/features/school/schedules/model"
	"sekolahku_backend/internals/features/school/schedules/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* ============================ REPLACE ============================ */

// Replace: PUT jadwal mingguan utuh satu kelas. Pohon lama dibuang dan
// diganti struktur kiriman dalam satu transaksi.
func (ctl *ScheduleController) Replace(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var cls classModel.ClassModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Where("class_id = ?", classID).
		First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	var req dto.ReplaceScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.ReplaceScheduleMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	tree, err := service.BuildScheduleTree(classID, req.Year, req.Semester, req.ToWeek())
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"week": {err.Error()},
		})
	}

	if err := service.ReplaceClassSchedule(reqCtx(c), ctl.DB, classID, tree); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	return helper.JsonUpdated(c, "Jadwal berhasil diperbarui", tree)
}

/* ============================ SHOW ============================ */

// Show: jadwal mingguan tersusun milik satu kelas (pohon penuh).
func (ctl *ScheduleController) Show(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var sched model.ClassScheduleModel
	err = ctl.DB.WithContext(reqCtx(c)).
		Preload("DailySchedules.ScheduleItems").
		Where("class_schedule_class_id = ? AND class_schedule_is_active = ?", classID, true).
		First(&sched).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.JsonOK(c, "", sched)
}

/* ============================ MY SCHEDULES ============================ */

// MySchedules: semua slot mengajar milik guru login, dikelompokkan per
// hari dari seluruh jadwal kelas aktif.
func (ctl *ScheduleController) MySchedules(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherProfileID(c)
	if err != nil {
		return err
	}

	type teachingSlot struct {
		ScheduleItemID uuid.UUID  `json:"schedule_item_id"`
		Day            string     `json:"day"`
		ClassID        uuid.UUID  `json:"class_id"`
		SubjectID      uuid.UUID  `json:"subject_id"`
		RoomID         *uuid.UUID `json:"room_id,omitempty"`
		StartTime      string     `json:"start_time"`
		EndTime        string     `json:"end_time"`
	}

	var slots []teachingSlot
	err = ctl.DB.WithContext(reqCtx(c)).
		Table("schedule_items").
		Select(`schedule_items.schedule_item_id,
			daily_schedules.daily_schedule_day AS day,
			class_schedules.class_schedule_class_id AS class_id,
			schedule_items.schedule_item_subject_id AS subject_id,
			schedule_items.schedule_item_room_id AS room_id,
			schedule_items.schedule_item_start_time AS start_time,
			schedule_items.schedule_item_end_time AS end_time`).
		Joins("JOIN daily_schedules ON daily_schedules.daily_schedule_id = schedule_items.schedule_item_daily_schedule_id").
		Joins("JOIN class_schedules ON class_schedules.class_schedule_id = daily_schedules.daily_schedule_class_schedule_id").
		Where("schedule_items.schedule_item_teacher_id = ? AND class_schedules.class_schedule_is_active = ?", teacherID, true).
		Order("daily_schedules.daily_schedule_day, schedule_items.schedule_item_start_time").
		Scan(&slots).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal mengajar")
	}

	grouped := make(map[string][]teachingSlot, 7)
	for _, s := range slots {
		grouped[s.Day] = append(grouped[s.Day], s)
	}
	return helper.JsonOK(c, "", grouped)
}
