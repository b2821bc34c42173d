// file: internals/features/school/masters/school_years/controller/school_year_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/masters/school_years/dto"
	"sekolahku_backend/internals/features/school/masters/school_years/model"
	helper "sekolahku_backend/internals/helpers"
)

type SchoolYearController struct {
	DB *gorm.DB
}

func NewSchoolYearController(db *gorm.DB) *SchoolYearController { return &SchoolYearController{DB: db} }

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func (ctl *SchoolYearController) find(c *fiber.Ctx) (*model.SchoolYearModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID tahun ajaran tidak valid")
	}
	var m model.SchoolYearModel
	if err := ctl.DB.WithContext(reqCtx(c)).Where("school_year_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tahun ajaran")
	}
	return &m, nil
}

// deactivateOthers mematikan flag aktif tahun ajaran lain. Paling banyak
// satu tahun ajaran boleh aktif.
func deactivateOthers(ctx context.Context, tx *gorm.DB, keep uuid.UUID) error {
	return tx.WithContext(ctx).
		Model(&model.SchoolYearModel{}).
		Where("school_year_id <> ? AND school_year_active = ?", keep, true).
		Update("school_year_active", false).Error
}

func (ctl *SchoolYearController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.WithContext(reqCtx(c)).Model(&model.SchoolYearModel{})

	if paging.All {
		var rows []model.SchoolYearModel
		if err := q.Order("school_year_start_year DESC").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tahun ajaran")
		}
		return helper.JsonList(c, "", rows, nil)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data tahun ajaran")
	}
	var rows []model.SchoolYearModel
	if err := q.Order("school_year_start_year DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tahun ajaran")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pg)
}

func (ctl *SchoolYearController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.CreateSchoolYearMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(reqCtx(c)).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if m.SchoolYearActive {
			return deactivateOthers(reqCtx(c), tx, m.SchoolYearID)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tahun ajaran")
	}
	return helper.JsonCreated(c, "Tahun ajaran berhasil dibuat", m)
}

func (ctl *SchoolYearController) Show(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *SchoolYearController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.UpdateSchoolYearMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	req.ApplyPatch(m)
	if m.SchoolYearEndYear < m.SchoolYearStartYear {
		return helper.JsonValidationError(c, map[string][]string{
			"end_year": {"Tahun selesai tidak boleh sebelum tahun mulai."},
		})
	}

	if err := ctl.DB.WithContext(reqCtx(c)).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if m.SchoolYearActive {
			return deactivateOthers(reqCtx(c), tx, m.SchoolYearID)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tahun ajaran")
	}
	return helper.JsonUpdated(c, "Tahun ajaran berhasil diperbarui", m)
}

func (ctl *SchoolYearController) Destroy(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(reqCtx(c)).Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tahun ajaran")
	}
	return helper.JsonDeleted(c, "Tahun ajaran berhasil dihapus", fiber.Map{"school_year_id": m.SchoolYearID})
}
