// file: internals/features/users/devices/route/device_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/devices/controller"
)

// DeviceRoutes: perangkat milik user login.
func DeviceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDeviceController(db)

	devices := r.Group("/devices")
	devices.Get("/", ctl.List)
	devices.Post("/", ctl.Register)
	devices.Delete("/:id", ctl.Destroy)
}
