// file: internals/features/school/masters/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/classes/controller"
	"sekolahku_backend/internals/helpers/storage"
)

// ClassAdminRoutes: CRUD kelas, wali kelas, dan gambar jadwal.
func ClassAdminRoutes(r fiber.Router, db *gorm.DB, st *storage.Service) {
	ctl := controller.NewClassController(db, st)

	classes := r.Group("/classes")
	classes.Get("/", ctl.List)
	classes.Post("/", ctl.Create)
	classes.Get("/:id", ctl.Show)
	classes.Put("/:id", ctl.Update)
	classes.Delete("/:id", ctl.Destroy)

	classes.Post("/:id/homeroom", ctl.AssignHomeroom)
	classes.Post("/:id/schedule-image", ctl.UploadScheduleImage)
	classes.Get("/:id/schedule-image", ctl.GetScheduleImage)
	classes.Delete("/:id/schedule-image", ctl.DeleteScheduleImage)
}

// ClassStudentRoutes: tampilan kelas milik siswa login.
func ClassStudentRoutes(r fiber.Router, db *gorm.DB, st *storage.Service) {
	ctl := controller.NewClassController(db, st)

	r.Get("/my-class", ctl.MyClass)
	r.Get("/my-class/students", ctl.MyClassStudents)
	r.Get("/my-class/schedules", ctl.MyClassSchedules)
}
