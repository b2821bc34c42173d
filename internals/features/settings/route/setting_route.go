// file: internals/features/settings/route/setting_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/settings/controller"
	"sekolahku_backend/internals/features/settings/service"
	"sekolahku_backend/internals/helpers/storage"
)

// SettingAdminRoutes: kelola pengaturan sekolah (admin/staf).
func SettingAdminRoutes(r fiber.Router, db *gorm.DB, settings *service.Service, st *storage.Service) {
	ctl := controller.NewSettingController(db, settings, st)

	r.Get("/settings", ctl.Index)
	r.Post("/settings", ctl.UploadMedia)
	r.Post("/settings/bulk-update", ctl.BulkUpdate)
}

// SettingPublicRoutes: bundel bootstrap untuk semua user login.
func SettingPublicRoutes(r fiber.Router, db *gorm.DB, settings *service.Service, st *storage.Service) {
	ctl := controller.NewSettingController(db, settings, st)

	r.Get("/settings/sync", ctl.Sync)
}
