// file: internals/features/users/admin_data/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminCtl "sekolahku_backend/internals/features/users/admin_data/controller"
	"sekolahku_backend/internals/features/users/admin_data/service"
)

// AdminDataRoutes: cek duplikasi + sync data master (khusus admin).
func AdminDataRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := adminCtl.NewAdminDataController(
		service.NewDuplicateChecker(service.NewGormIdentityStore(db)),
	)

	admin.Post("/validate-duplicates", ctl.ValidateDuplicates)
	admin.Post("/sync", ctl.Sync)
}
