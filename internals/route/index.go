// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	settingRoute "sekolahku_backend/internals/features/settings/route"
	settingService "sekolahku_backend/internals/features/settings/service"
	deviceRoute "sekolahku_backend/internals/features/users/devices/route"
	userRoute "sekolahku_backend/internals/features/users/users/route"
	"sekolahku_backend/internals/helpers/storage"
	middleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/route/details"
)

// SetupRoutes memasang seluruh route API di bawah /api: jalur publik
// (login), lalu grup terproteksi per peran.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	st := storage.NewServiceFromEnv()
	settings := settingService.NewService(settingService.NewGormSettingStore(db))

	api := app.Group("/api")

	// publik, login dibatasi limiter ketat
	userRoute.AuthPublicRoutes(api, db)

	// semua di bawah ini wajib token
	authed := api.Group("", middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	userRoute.AuthProtectedRoutes(authed, db)
	deviceRoute.DeviceRoutes(authed, db)
	settingRoute.SettingPublicRoutes(authed, db, settings, st)

	details.AdminRoutes(authed, db, settings, st)
	details.TeacherRoutes(authed, db)
	details.StudentRoutes(authed, db, st)
}
