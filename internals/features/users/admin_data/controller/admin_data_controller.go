// file: internals/features/users/admin_data/controller/admin_data_controller.go
package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	dto "sekolahku_backend/internals/features/users/admin_data/dto"
	"sekolahku_backend/internals/features/users/admin_data/service"
	helper "sekolahku_backend/internals/helpers"
)

type AdminDataController struct {
	Checker *service.DuplicateChecker
}

func NewAdminDataController(checker *service.DuplicateChecker) *AdminDataController {
	return &AdminDataController{Checker: checker}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// ValidateDuplicates: cek duplikasi username/NISN/NIP/email untuk
// batch import data master. Murni read-only; insert tetap dijaga
// unique constraint database.
func (ctl *AdminDataController) ValidateDuplicates(c *fiber.Ctx) error {
	var req dto.ValidateDuplicatesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.ValidateDuplicatesMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	report, err := ctl.Checker.Check(reqCtx(c), req.ToCandidates())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa duplikasi")
	}

	// Bentuk response mengikuti API lama (bukan envelope standar).
	return c.Status(fiber.StatusOK).JSON(report)
}

// Sync: endpoint sinkronisasi data master; saat ini alias dari cek
// duplikasi (mengikuti API lama).
func (ctl *AdminDataController) Sync(c *fiber.Ctx) error {
	return ctl.ValidateDuplicates(c)
}
