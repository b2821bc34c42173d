// file: internals/features/school/masters/time_slots/controller/time_slot_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/masters/time_slots/dto"
	"sekolahku_backend/internals/features/school/masters/time_slots/model"
	helper "sekolahku_backend/internals/helpers"
)

type TimeSlotController struct {
	DB *gorm.DB
}

func NewTimeSlotController(db *gorm.DB) *TimeSlotController { return &TimeSlotController{DB: db} }

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// checkClockRange memvalidasi pasangan jam "HH:MM" dan end ketat
// setelah start. Mengembalikan map error siap kirim, nil bila valid.
func checkClockRange(start, end string) map[string][]string {
	ok, err := helper.ClockAfter(start, end)
	if err != nil {
		return map[string][]string{"start_time": {"Format waktu harus HH:MM."}}
	}
	if !ok {
		return map[string][]string{"end_time": {"Jam selesai harus setelah jam mulai."}}
	}
	return nil
}

func (ctl *TimeSlotController) find(c *fiber.Ctx) (*model.TimeSlotModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID jam pelajaran tidak valid")
	}
	var m model.TimeSlotModel
	if err := ctl.DB.WithContext(reqCtx(c)).Where("time_slot_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Jam pelajaran tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jam pelajaran")
	}
	return &m, nil
}

func (ctl *TimeSlotController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.WithContext(reqCtx(c)).Model(&model.TimeSlotModel{})

	if paging.All {
		var rows []model.TimeSlotModel
		if err := q.Order("time_slot_start_time").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jam pelajaran")
		}
		return helper.JsonList(c, "", rows, nil)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data jam pelajaran")
	}
	var rows []model.TimeSlotModel
	if err := q.Order("time_slot_start_time").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jam pelajaran")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pg)
}

func (ctl *TimeSlotController) Create(c *fiber.Ctx) error {
	var req dto.CreateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.CreateTimeSlotMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if fieldErrs := checkClockRange(req.StartTime, req.EndTime); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jam pelajaran")
	}
	return helper.JsonCreated(c, "Jam pelajaran berhasil dibuat", m)
}

func (ctl *TimeSlotController) Show(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *TimeSlotController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.UpdateTimeSlotMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// cek rentang pada hasil merge, bukan hanya field yang dikirim
	req.ApplyPatch(m)
	if fieldErrs := checkClockRange(m.TimeSlotStartTime, m.TimeSlotEndTime); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if err := ctl.DB.WithContext(reqCtx(c)).Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jam pelajaran")
	}
	return helper.JsonUpdated(c, "Jam pelajaran berhasil diperbarui", m)
}

func (ctl *TimeSlotController) Destroy(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(reqCtx(c)).Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jam pelajaran")
	}
	return helper.JsonDeleted(c, "Jam pelajaran berhasil dihapus", fiber.Map{"time_slot_id": m.TimeSlotID})
}
