// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classRoute "sekolahku_backend/internals/features/school/masters/classes/route"
	majorRoute "sekolahku_backend/internals/features/school/masters/majors/route"
	roomRoute "sekolahku_backend/internals/features/school/masters/rooms/route"
	schoolYearRoute "sekolahku_backend/internals/features/school/masters/school_years/route"
	semesterRoute "sekolahku_backend/internals/features/school/masters/semesters/route"
	subjectRoute "sekolahku_backend/internals/features/school/masters/subjects/route"
	timeSlotRoute "sekolahku_backend/internals/features/school/masters/time_slots/route"
	scheduleRoute "sekolahku_backend/internals/features/school/schedules/route"
	settingRoute "sekolahku_backend/internals/features/settings/route"
	settingService "sekolahku_backend/internals/features/settings/service"
	adminDataRoute "sekolahku_backend/internals/features/users/admin_data/route"
	"sekolahku_backend/internals/helpers/storage"
	middleware "sekolahku_backend/internals/middlewares/auth"
)

// AdminRoutes: data master, jadwal, pengaturan, dan sinkronisasi data
// identitas. Hanya admin dan staf tata usaha.
func AdminRoutes(api fiber.Router, db *gorm.DB, settings *settingService.Service, st *storage.Service) {
	admin := api.Group("/admin", middleware.RequireRoles(constants.AdminAndStaff...))

	majorRoute.MajorAdminRoutes(admin, db)
	roomRoute.RoomAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	timeSlotRoute.TimeSlotAdminRoutes(admin, db)
	schoolYearRoute.SchoolYearAdminRoutes(admin, db)
	semesterRoute.SemesterAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db, st)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	settingRoute.SettingAdminRoutes(admin, db, settings, st)
	adminDataRoute.AdminDataRoutes(admin, db)
}
