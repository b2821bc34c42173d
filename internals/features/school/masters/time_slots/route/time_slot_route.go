// file: internals/features/school/masters/time_slots/route/time_slot_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/time_slots/controller"
)

func TimeSlotAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTimeSlotController(db)

	slots := r.Group("/time-slots")
	slots.Get("/", ctl.List)
	slots.Post("/", ctl.Create)
	slots.Get("/:id", ctl.Show)
	slots.Put("/:id", ctl.Update)
	slots.Delete("/:id", ctl.Destroy)
}
