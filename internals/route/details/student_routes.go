// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	classRoute "sekolahku_backend/internals/features/school/masters/classes/route"
	"sekolahku_backend/internals/helpers/storage"
	middleware "sekolahku_backend/internals/middlewares/auth"
)

// StudentRoutes: tampilan kelas, jadwal, dan absensi milik siswa login.
func StudentRoutes(api fiber.Router, db *gorm.DB, st *storage.Service) {
	student := api.Group("/student", middleware.RequireRoles(constants.StudentOnly...))

	classRoute.ClassStudentRoutes(student, db, st)
	attendanceRoute.AttendanceStudentRoutes(student, db)
}
