// file: internals/features/school/masters/semesters/controller/semester_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/masters/semesters/dto"
	"sekolahku_backend/internals/features/school/masters/semesters/model"
	helper "sekolahku_backend/internals/helpers"
)

type SemesterController struct {
	DB *gorm.DB
}

func NewSemesterController(db *gorm.DB) *SemesterController { return &SemesterController{DB: db} }

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func (ctl *SemesterController) find(c *fiber.Ctx) (*model.SemesterModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID semester tidak valid")
	}
	var m model.SemesterModel
	if err := ctl.DB.WithContext(reqCtx(c)).Where("semester_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Semester tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data semester")
	}
	return &m, nil
}

func deactivateOthers(ctx context.Context, tx *gorm.DB, keep uuid.UUID) error {
	return tx.WithContext(ctx).
		Model(&model.SemesterModel{}).
		Where("semester_id <> ? AND semester_active = ?", keep, true).
		Update("semester_active", false).Error
}

func (ctl *SemesterController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.WithContext(reqCtx(c)).Model(&model.SemesterModel{})
	if yearID := c.Query("school_year_id"); yearID != "" {
		q = q.Where("semester_school_year_id = ?", yearID)
	}

	if paging.All {
		var rows []model.SemesterModel
		if err := q.Order("semester_created_at DESC").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data semester")
		}
		return helper.JsonList(c, "", rows, nil)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data semester")
	}
	var rows []model.SemesterModel
	if err := q.Order("semester_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data semester")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pg)
}

func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	var req dto.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.CreateSemesterMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(reqCtx(c)).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if m.SemesterActive {
			return deactivateOthers(reqCtx(c), tx, m.SemesterID)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan semester")
	}
	return helper.JsonCreated(c, "Semester berhasil dibuat", m)
}

func (ctl *SemesterController) Show(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *SemesterController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.UpdateSemesterMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	req.ApplyPatch(m)
	if err := ctl.DB.WithContext(reqCtx(c)).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if m.SemesterActive {
			return deactivateOthers(reqCtx(c), tx, m.SemesterID)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui semester")
	}
	return helper.JsonUpdated(c, "Semester berhasil diperbarui", m)
}

func (ctl *SemesterController) Destroy(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(reqCtx(c)).Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus semester")
	}
	return helper.JsonDeleted(c, "Semester berhasil dihapus", fiber.Map{"semester_id": m.SemesterID})
}
