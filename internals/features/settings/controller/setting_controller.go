// file: internals/features/settings/controller/setting_controller.go
package controller

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolYearModel "sekolahku_backend/internals/features/school/masters/school_years/model"
	semesterModel "sekolahku_backend/internals/features/school/masters/semesters/model"
	dto "sekolahku_backend/internals/features/settings/dto"
	"sekolahku_backend/internals/features/settings/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/storage"
)

// mediaFields memetakan nama field upload ke setting key path-nya.
var mediaFields = map[string]string{
	"logo":   "school_logo",
	"mascot": "school_mascot",
}

type SettingController struct {
	DB       *gorm.DB
	Settings *service.Service
	Storage  *storage.Service
}

func NewSettingController(db *gorm.DB, settings *service.Service, st *storage.Service) *SettingController {
	return &SettingController{DB: db, Settings: settings, Storage: st}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// Index: seluruh pengaturan, path media diekspansi jadi key *_url.
func (ctl *SettingController) Index(c *fiber.Ctx) error {
	values, err := ctl.Settings.All(reqCtx(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	return helper.JsonOK(c, "", service.ExpandURLs(values, ctl.Storage))
}

// BulkUpdate memperbarui hanya key yang sudah terdaftar; key tak dikenal
// dilaporkan di skipped tanpa menggagalkan request.
func (ctl *SettingController) BulkUpdate(c *fiber.Ctx) error {
	var req dto.BulkUpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.BulkUpdateSettingsMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updated, skipped, err := ctl.Settings.BulkUpdate(reqCtx(c), req.ToMap())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengaturan")
	}
	return helper.JsonUpdated(c, "Pengaturan berhasil diperbarui", fiber.Map{
		"updated": updated,
		"skipped": skipped,
	})
}

// UploadMedia menerima field multipart logo/mascot. File lama dihapus
// dulu, file baru disimpan sebagai WebP, lalu path-nya ditulis ke
// setting key terkait.
func (ctl *SettingController) UploadMedia(c *fiber.Ctx) error {
	saved := fiber.Map{}
	anyFile := false

	for field, key := range mediaFields {
		fh, err := c.FormFile(field)
		if err != nil {
			continue
		}
		anyFile = true

		if fieldErrs := ctl.replaceMedia(c, key, fh); fieldErrs != nil {
			return helper.JsonValidationError(c, map[string][]string{field: fieldErrs})
		}
		v, _, _ := ctl.Settings.Get(reqCtx(c), key)
		if v != nil {
			saved[key+"_url"] = ctl.Storage.PublicURL(*v)
		}
	}

	if !anyFile {
		return helper.JsonValidationError(c, map[string][]string{
			"logo": {"Minimal satu file (logo atau mascot) wajib diunggah."},
		})
	}
	return helper.JsonUpdated(c, "Media sekolah berhasil diperbarui", saved)
}

func (ctl *SettingController) replaceMedia(c *fiber.Ctx, key string, fh *multipart.FileHeader) []string {
	if fh.Size > storage.MaxImageBytes {
		return []string{"Ukuran gambar maksimal 2MB."}
	}

	old, _, err := ctl.Settings.Get(reqCtx(c), key)
	if err != nil {
		return []string{"Gagal membaca pengaturan lama."}
	}
	if old != nil {
		_ = ctl.Storage.Delete(*old)
	}

	newKey, err := ctl.Storage.SaveWebP(fh, "settings")
	if err != nil {
		return []string{"Gambar tidak dapat diproses."}
	}
	if err := ctl.Settings.Set(reqCtx(c), key, &newKey); err != nil {
		_ = ctl.Storage.Delete(newKey)
		return []string{"Gagal menyimpan pengaturan."}
	}
	return nil
}

// Sync: bundel pengaturan plus tahun ajaran dan semester aktif untuk
// bootstrap aplikasi klien.
func (ctl *SettingController) Sync(c *fiber.Ctx) error {
	values, err := ctl.Settings.All(reqCtx(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	payload := fiber.Map{
		"settings": service.ExpandURLs(values, ctl.Storage),
	}

	var year schoolYearModel.SchoolYearModel
	err = ctl.DB.WithContext(reqCtx(c)).
		Where("school_year_active = ?", true).
		First(&year).Error
	if err == nil {
		payload["active_school_year"] = year
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran aktif")
	}

	var semester semesterModel.SemesterModel
	err = ctl.DB.WithContext(reqCtx(c)).
		Where("semester_active = ?", true).
		First(&semester).Error
	if err == nil {
		payload["active_semester"] = semester
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil semester aktif")
	}

	return helper.JsonOK(c, "", payload)
}
