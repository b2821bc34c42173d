// file: internals/features/school/masters/semesters/route/semester_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/semesters/controller"
)

func SemesterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSemesterController(db)

	semesters := r.Group("/semesters")
	semesters.Get("/", ctl.List)
	semesters.Post("/", ctl.Create)
	semesters.Get("/:id", ctl.Show)
	semesters.Put("/:id", ctl.Update)
	semesters.Delete("/:id", ctl.Destroy)
}
