// file: internals/features/school/masters/rooms/route/room_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/rooms/controller"
)

func RoomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoomController(db)

	rooms := r.Group("/rooms")
	rooms.Get("/", ctl.List)
	rooms.Post("/", ctl.Create)
	rooms.Get("/:id", ctl.Show)
	rooms.Put("/:id", ctl.Update)
	rooms.Delete("/:id", ctl.Destroy)
}
