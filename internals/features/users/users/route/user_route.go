// file: internals/features/users/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/users/controller"
	"sekolahku_backend/internals/middlewares"
)

// AuthPublicRoutes: login tanpa token, dengan limiter ketat.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AuthProtectedRoutes: endpoint identitas user login.
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r.Get("/me", ctl.Me)
	r.Post("/change-password", ctl.ChangePassword)
}
