// file: internals/route/details/teacher_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	scheduleRoute "sekolahku_backend/internals/features/school/schedules/route"
	middleware "sekolahku_backend/internals/middlewares/auth"
)

// TeacherRoutes: input kehadiran, rekap, dan jadwal mengajar. Admin
// ikut masuk supaya waka bisa memantau rekap.
func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	teacher := api.Group("/teacher", middleware.RequireRoles(constants.TeacherAndAdmin...))

	attendanceRoute.AttendanceTeacherRoutes(teacher, db)
	scheduleRoute.ScheduleTeacherRoutes(teacher, db)
}
