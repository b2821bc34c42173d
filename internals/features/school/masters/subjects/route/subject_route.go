// file: internals/features/school/masters/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/subjects/controller"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.List)
	subjects.Post("/", ctl.Create)
	subjects.Get("/:id", ctl.Show)
	subjects.Put("/:id", ctl.Update)
	subjects.Delete("/:id", ctl.Destroy)
}
