// file: internals/features/school/masters/rooms/controller/room_controller.go
package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/masters/rooms/dto"
	"sekolahku_backend/internals/features/school/masters/rooms/model"
	helper "sekolahku_backend/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController { return &RoomController{DB: db} }

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func (ctl *RoomController) find(c *fiber.Ctx) (*model.RoomModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID ruangan tidak valid")
	}
	var m model.RoomModel
	if err := ctl.DB.WithContext(reqCtx(c)).Where("room_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ruangan")
	}
	return &m, nil
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.WithContext(reqCtx(c)).Model(&model.RoomModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("room_name ILIKE ? OR room_code ILIKE ?", like, like)
	}

	if paging.All {
		var rows []model.RoomModel
		if err := q.Order("room_name").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ruangan")
		}
		return helper.JsonList(c, "", rows, nil)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data ruangan")
	}
	var rows []model.RoomModel
	if err := q.Order("room_name").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ruangan")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pg)
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.CreateRoomMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode ruangan sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan ruangan")
	}
	return helper.JsonCreated(c, "Ruangan berhasil dibuat", m)
}

func (ctl *RoomController) Show(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *RoomController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.UpdateRoomMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	req.ApplyPatch(m)
	if err := ctl.DB.WithContext(reqCtx(c)).Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode ruangan sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui ruangan")
	}
	return helper.JsonUpdated(c, "Ruangan berhasil diperbarui", m)
}

func (ctl *RoomController) Destroy(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(reqCtx(c)).Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ruangan")
	}
	return helper.JsonDeleted(c, "Ruangan berhasil dihapus", fiber.Map{"room_id": m.RoomID})
}
