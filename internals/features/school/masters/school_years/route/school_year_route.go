// file: internals/features/school/masters/school_years/route/school_year_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/school_years/controller"
)

func SchoolYearAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolYearController(db)

	years := r.Group("/school-years")
	years.Get("/", ctl.List)
	years.Post("/", ctl.Create)
	years.Get("/:id", ctl.Show)
	years.Put("/:id", ctl.Update)
	years.Delete("/:id", ctl.Destroy)
}
