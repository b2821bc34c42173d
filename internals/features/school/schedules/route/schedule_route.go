// file: internals/features/school/schedules/route/schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/schedules/controller"
)

// ScheduleAdminRoutes: penyusunan jadwal oleh admin/staf.
func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewScheduleController(db)

	r.Put("/classes/:id/schedule", ctl.Replace)
	r.Get("/classes/:id/schedule", ctl.Show)
}

// ScheduleTeacherRoutes: jadwal mengajar milik guru login.
func ScheduleTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewScheduleController(db)

	r.Get("/my-schedules", ctl.MySchedules)
}
