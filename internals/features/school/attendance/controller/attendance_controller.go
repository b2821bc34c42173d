// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
	"sekolahku_backend/internals/features/school/attendance/service"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB     *gorm.DB
	Manual *service.ManualAttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB: db,
		Manual: service.NewManualAttendanceService(
			service.NewGormScheduleStore(db),
			service.NewGormAttendanceStore(db),
		),
	}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* ============================ MANUAL SUBMIT ============================ */

// SubmitManual: guru mencatat kehadiran satu siswa untuk satu slot
// jadwal pada satu tanggal. Guru harus pemilik jadwal; submit ulang
// menimpa record yang sama.
func (ctl *AttendanceController) SubmitManual(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherProfileID(c)
	if err != nil {
		return err
	}

	var req dto.ManualAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.ManualAttendanceMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	date, err := req.ParsedDate()
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"Format tanggal harus YYYY-MM-DD"},
		})
	}

	rec, err := ctl.Manual.Submit(reqCtx(c), teacherID, service.SubmitInput{
		StudentID:  req.StudentID,
		ScheduleID: req.ScheduleID,
		Status:     req.Status,
		Date:       date,
		Reason:     req.Reason,
	})
	switch {
	case errors.Is(err, service.ErrUnknownStatus):
		return helper.JsonValidationError(c, map[string][]string{
			"status": {"Status kehadiran tidak dikenal"},
		})
	case errors.Is(err, service.ErrScheduleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	case errors.Is(err, service.ErrNotScheduleOwner):
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke jadwal ini")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}

	return helper.JsonOK(c, "Kehadiran berhasil disimpan", rec)
}

/* ============================ DAILY RECAP ============================ */

// DailyRecap: rekap harian satu kelas untuk guru/waka. Siswa tanpa
// record pada tanggal itu dihitung absent (kebijakan call site ini).
func (ctl *AttendanceController) DailyRecap(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	dateStr := c.Query("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	var profiles []userModel.StudentProfileModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Preload("User").
		Where("student_profile_class_id = ?", classID).
		Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	students := make([]service.StudentRef, 0, len(profiles))
	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		name := ""
		if p.User != nil {
			name = p.User.UserName
		}
		students = append(students, service.StudentRef{ID: p.StudentProfileID, Name: name})
		ids = append(ids, p.StudentProfileID)
	}

	var records []model.AttendanceModel
	if len(ids) > 0 {
		if err := ctl.DB.WithContext(reqCtx(c)).
			Where("attendance_student_id IN ? AND attendance_date = ?", ids, date.Format("2006-01-02")).
			Find(&records).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"class_id": classID,
		"date":     date.Format("2006-01-02"),
		"day":      helper.WeekdayName(date),
		"rows":     service.BuildDailyRecap(students, records),
	})
}

/* ============================ MY CLASS ============================ */

// MyClassAttendance: daftar absensi kelas milik siswa login. Hanya
// record yang ada yang dikembalikan, tidak ada pengisian default
// untuk siswa tanpa record (kebijakan call site ini).
func (ctl *AttendanceController) MyClassAttendance(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentProfileID(c)
	if err != nil {
		return err
	}

	var me userModel.StudentProfileModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Where("student_profile_id = ?", studentID).
		First(&me).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil siswa tidak ditemukan")
	}
	if me.StudentProfileClassID == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	q := ctl.DB.WithContext(reqCtx(c)).Model(&model.AttendanceModel{}).
		Joins("JOIN student_profiles sp ON sp.student_profile_id = attendances.attendance_student_id").
		Where("sp.student_profile_class_id = ?", *me.StudentProfileClassID)

	if from := c.Query("from"); from != "" {
		q = q.Where("attendance_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("attendance_date <= ?", to)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("attendance_status = ?", status)
	}

	var records []model.AttendanceModel
	if err := q.Order("attendance_date DESC, attendance_created_at DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}
	return helper.JsonOK(c, "", records)
}
