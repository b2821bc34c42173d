// file: internals/features/school/masters/majors/controller/major_controller.go
package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/masters/majors/dto"
	"sekolahku_backend/internals/features/school/masters/majors/model"
	helper "sekolahku_backend/internals/helpers"
)

type MajorController struct {
	DB *gorm.DB
}

func NewMajorController(db *gorm.DB) *MajorController { return &MajorController{DB: db} }

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func (ctl *MajorController) find(c *fiber.Ctx) (*model.MajorModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID jurusan tidak valid")
	}
	var m model.MajorModel
	if err := ctl.DB.WithContext(reqCtx(c)).Where("major_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Jurusan tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jurusan")
	}
	return &m, nil
}

func (ctl *MajorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.WithContext(reqCtx(c)).Model(&model.MajorModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("major_code ILIKE ? OR major_name ILIKE ?", like, like)
	}

	if paging.All {
		var rows []model.MajorModel
		if err := q.Order("major_code").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jurusan")
		}
		return helper.JsonList(c, "", rows, nil)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data jurusan")
	}
	var rows []model.MajorModel
	if err := q.Order("major_code").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jurusan")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pg)
}

func (ctl *MajorController) Create(c *fiber.Ctx) error {
	var req dto.CreateMajorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.CreateMajorMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode jurusan sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jurusan")
	}
	return helper.JsonCreated(c, "Jurusan berhasil dibuat", m)
}

func (ctl *MajorController) Show(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *MajorController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMajorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.UpdateMajorMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	req.ApplyPatch(m)
	if err := ctl.DB.WithContext(reqCtx(c)).Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode jurusan sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jurusan")
	}
	return helper.JsonUpdated(c, "Jurusan berhasil diperbarui", m)
}

func (ctl *MajorController) Destroy(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(reqCtx(c)).Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jurusan")
	}
	return helper.JsonDeleted(c, "Jurusan berhasil dihapus", fiber.Map{"major_id": m.MajorID})
}
