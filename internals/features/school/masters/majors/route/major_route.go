// file: internals/features/school/masters/majors/route/major_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/majors/controller"
)

func MajorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMajorController(db)

	majors := r.Group("/majors")
	majors.Get("/", ctl.List)
	majors.Post("/", ctl.Create)
	majors.Get("/:id", ctl.Show)
	majors.Put("/:id", ctl.Update)
	majors.Delete("/:id", ctl.Destroy)
}
