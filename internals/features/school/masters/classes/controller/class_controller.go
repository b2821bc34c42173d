// file: internals/features/school/masters/classes/controller/class_controller.go
package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/masters/classes/dto"
	"sekolahku_backend/internals/features/school/masters/classes/model"
	"sekolahku_backend/internals/features/school/masters/classes/service"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/storage"
)

type ClassController struct {
	DB      *gorm.DB
	Storage *storage.Service
}

func NewClassController(db *gorm.DB, st *storage.Service) *ClassController {
	return &ClassController{DB: db, Storage: st}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func (ctl *ClassController) findClass(c *fiber.Ctx) (*model.ClassModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	var m model.ClassModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Preload("Major").
		Where("class_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	return &m, nil
}

// homeroomOf mencari wali kelas aktif; nil bila slot kosong.
func (ctl *ClassController) homeroomOf(c *fiber.Ctx, classID uuid.UUID) *userModel.TeacherProfileModel {
	var tp userModel.TeacherProfileModel
	err := ctl.DB.WithContext(reqCtx(c)).
		Preload("User").
		Where("teacher_profile_homeroom_class_id = ?", classID).
		First(&tp).Error
	if err != nil {
		return nil
	}
	return &tp
}

func (ctl *ClassController) classPayload(c *fiber.Ctx, m model.ClassModel) fiber.Map {
	payload := fiber.Map{
		"class":      m,
		"class_name": m.Name(),
	}
	if hr := ctl.homeroomOf(c, m.ClassID); hr != nil {
		payload["homeroom_teacher"] = hr
	}
	if m.ClassScheduleImageKey != nil {
		payload["schedule_image_url"] = ctl.Storage.PublicURL(*m.ClassScheduleImageKey)
	}
	return payload
}

/* ============================ CRUD ============================ */

func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.WithContext(reqCtx(c)).Model(&model.ClassModel{}).Preload("Major")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("class_grade ILIKE ? OR class_label ILIKE ?", like, like)
	}
	if majorID := c.Query("major_id"); majorID != "" {
		q = q.Where("class_major_id = ?", majorID)
	}

	if paging.All {
		var rows []model.ClassModel
		if err := q.Order("class_grade, class_label").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
		}
		return helper.JsonList(c, "", rows, nil)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data kelas")
	}
	var rows []model.ClassModel
	if err := q.Order("class_grade, class_label").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pg)
}

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.CreateClassMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kelas sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", m)
}

func (ctl *ClassController) Show(c *fiber.Ctx) error {
	m, err := ctl.findClass(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", ctl.classPayload(c, *m))
}

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	m, err := ctl.findClass(c)
	if err != nil {
		return err
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.UpdateClassMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	req.ApplyPatch(m)
	if err := ctl.DB.WithContext(reqCtx(c)).Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", m)
}

func (ctl *ClassController) Destroy(c *fiber.Ctx) error {
	m, err := ctl.findClass(c)
	if err != nil {
		return err
	}

	if err := ctl.DB.WithContext(reqCtx(c)).Transaction(func(tx *gorm.DB) error {
		// lepas slot wali supaya guru lama tidak menggantung ke kelas mati
		if err := service.NewGormHomeroomStore(tx).ClearHomeroom(reqCtx(c), m.ClassID); err != nil {
			return err
		}
		return tx.Delete(m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}

	if m.ClassScheduleImageKey != nil {
		_ = ctl.Storage.Delete(*m.ClassScheduleImageKey)
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": m.ClassID})
}

/* ============================ HOMEROOM ============================ */

// AssignHomeroom memasang wali kelas. Pemegang slot lama dilepas dalam
// transaksi yang sama.
func (ctl *ClassController) AssignHomeroom(c *fiber.Ctx) error {
	m, err := ctl.findClass(c)
	if err != nil {
		return err
	}

	var req dto.AssignHomeroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.AssignHomeroomMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	err = ctl.DB.WithContext(reqCtx(c)).Transaction(func(tx *gorm.DB) error {
		return service.AssignHomeroom(reqCtx(c), service.NewGormHomeroomStore(tx), req.TeacherID, m.ClassID)
	})
	if errors.Is(err, service.ErrTeacherNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil guru tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan wali kelas")
	}
	return helper.JsonUpdated(c, "Wali kelas berhasil diperbarui", ctl.classPayload(c, *m))
}

/* ============================ SCHEDULE IMAGE ============================ */

// UploadScheduleImage mengganti gambar jadwal kelas. File lama dihapus
// dulu, baru file baru disimpan sebagai WebP.
func (ctl *ClassController) UploadScheduleImage(c *fiber.Ctx) error {
	m, err := ctl.findClass(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"image": {"File gambar wajib diunggah."},
		})
	}
	if fh.Size > storage.MaxImageBytes {
		return helper.JsonValidationError(c, map[string][]string{
			"image": {"Ukuran gambar maksimal 2MB."},
		})
	}

	if m.ClassScheduleImageKey != nil {
		_ = ctl.Storage.Delete(*m.ClassScheduleImageKey)
	}

	key, err := ctl.Storage.SaveWebP(fh, "schedule-images")
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Gambar tidak dapat diproses")
	}

	m.ClassScheduleImageKey = &key
	if err := ctl.DB.WithContext(reqCtx(c)).
		Model(m).
		Update("class_schedule_image_key", key).Error; err != nil {
		_ = ctl.Storage.Delete(key)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar jadwal")
	}

	return helper.JsonUpdated(c, "Gambar jadwal berhasil diperbarui", fiber.Map{
		"class_id":           m.ClassID,
		"schedule_image_url": ctl.Storage.PublicURL(key),
	})
}

func (ctl *ClassController) GetScheduleImage(c *fiber.Ctx) error {
	m, err := ctl.findClass(c)
	if err != nil {
		return err
	}
	if m.ClassScheduleImageKey == nil || !ctl.Storage.Exists(*m.ClassScheduleImageKey) {
		return helper.JsonError(c, fiber.StatusNotFound, "Gambar jadwal tidak ditemukan")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"class_id":           m.ClassID,
		"schedule_image_url": ctl.Storage.PublicURL(*m.ClassScheduleImageKey),
	})
}

func (ctl *ClassController) DeleteScheduleImage(c *fiber.Ctx) error {
	m, err := ctl.findClass(c)
	if err != nil {
		return err
	}
	if m.ClassScheduleImageKey == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Gambar jadwal tidak ditemukan")
	}

	key := *m.ClassScheduleImageKey
	if err := ctl.DB.WithContext(reqCtx(c)).
		Model(m).
		Update("class_schedule_image_key", nil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus gambar jadwal")
	}
	_ = ctl.Storage.Delete(key)

	return helper.JsonDeleted(c, "Gambar jadwal berhasil dihapus", fiber.Map{"class_id": m.ClassID})
}
