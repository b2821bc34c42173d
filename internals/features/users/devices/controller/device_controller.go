// file: internals/features/users/devices/controller/device_controller.go
package controller

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/users/devices/dto"
	"sekolahku_backend/internals/features/users/devices/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type DeviceController struct {
	DB *gorm.DB
}

func NewDeviceController(db *gorm.DB) *DeviceController { return &DeviceController{DB: db} }

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// List: perangkat milik user login.
func (ctl *DeviceController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var rows []model.DeviceModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Where("device_user_id = ?", userID).
		Order("device_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data perangkat")
	}
	return helper.JsonOK(c, "", rows)
}

// Register mendaftarkan atau menyegarkan perangkat user login.
// Untuk siswa, perangkat lain dinonaktifkan dulu: satu siswa satu
// device aktif.
func (ctl *DeviceController) Register(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.RegisterDeviceMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	now := time.Now()
	var device model.DeviceModel

	err = ctl.DB.WithContext(reqCtx(c)).Transaction(func(tx *gorm.DB) error {
		if helperAuth.GetUserType(c) == constants.RoleStudent {
			if err := tx.Model(&model.DeviceModel{}).
				Where("device_user_id = ? AND device_identifier <> ?", userID, req.Identifier).
				Update("device_active", false).Error; err != nil {
				return err
			}
		}

		err := tx.Where("device_user_id = ? AND device_identifier = ?", userID, req.Identifier).
			First(&device).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			device = model.DeviceModel{
				DeviceUserID:     userID,
				DeviceIdentifier: req.Identifier,
				DeviceName:       req.Name,
				DevicePlatform:   req.Platform,
				DeviceActive:     true,
				DeviceLastUsedAt: &now,
			}
			return tx.Create(&device).Error
		case err != nil:
			return err
		default:
			device.DeviceName = req.Name
			device.DevicePlatform = req.Platform
			device.DeviceActive = true
			device.DeviceLastUsedAt = &now
			return tx.Save(&device).Error
		}
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan perangkat")
	}

	return helper.JsonCreated(c, "Perangkat berhasil didaftarkan", device)
}

// Destroy menghapus perangkat milik user login; perangkat user lain 403.
func (ctl *DeviceController) Destroy(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	deviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID perangkat tidak valid")
	}

	var device model.DeviceModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Where("device_id = ?", deviceID).
		First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Perangkat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data perangkat")
	}
	if device.DeviceUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke perangkat ini")
	}

	if err := ctl.DB.WithContext(reqCtx(c)).Delete(&device).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus perangkat")
	}
	return helper.JsonDeleted(c, "Perangkat berhasil dihapus", fiber.Map{"device_id": device.DeviceID})
}
