// file: internals/features/school/attendance/route/attendance_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtl "sekolahku_backend/internals/features/school/attendance/controller"
)

// AttendanceTeacherRoutes: input manual + rekap harian (guru/waka).
func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attCtl.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Post("/manual", ctl.SubmitManual)
	g.Get("/recap", ctl.DailyRecap)
}

// AttendanceStudentRoutes: tampilan absensi kelas milik siswa login.
func AttendanceStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attCtl.NewAttendanceController(db)

	r.Get("/my-class/attendance", ctl.MyClassAttendance)
}
