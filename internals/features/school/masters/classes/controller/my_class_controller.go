// file: internals/features/school/masters/classes/controller/my_class_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/classes/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// myClass mengambil kelas milik siswa login.
func (ctl *ClassController) myClass(c *fiber.Ctx) (*model.ClassModel, error) {
	studentID, err := helperAuth.GetStudentProfileID(c)
	if err != nil {
		return nil, err
	}

	var me userModel.StudentProfileModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Where("student_profile_id = ?", studentID).
		First(&me).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Profil siswa tidak ditemukan")
	}
	if me.StudentProfileClassID == nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Anda belum terdaftar di kelas mana pun")
	}

	var cls model.ClassModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Preload("Major").
		Where("class_id = ?", *me.StudentProfileClassID).
		First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	return &cls, nil
}

// MyClass: detail kelas siswa login, termasuk wali kelas dan gambar
// jadwal bila ada.
func (ctl *ClassController) MyClass(c *fiber.Ctx) error {
	cls, err := ctl.myClass(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", ctl.classPayload(c, *cls))
}

// MyClassStudents: daftar teman sekelas siswa login.
func (ctl *ClassController) MyClassStudents(c *fiber.Ctx) error {
	cls, err := ctl.myClass(c)
	if err != nil {
		return err
	}

	var students []userModel.StudentProfileModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Preload("User").
		Where("student_profile_class_id = ?", cls.ClassID).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"class_id":   cls.ClassID,
		"class_name": cls.Name(),
		"students":   students,
	})
}

// MyClassSchedules: jadwal mingguan tersusun milik kelas siswa login.
func (ctl *ClassController) MyClassSchedules(c *fiber.Ctx) error {
	cls, err := ctl.myClass(c)
	if err != nil {
		return err
	}

	var sched scheduleModel.ClassScheduleModel
	err = ctl.DB.WithContext(reqCtx(c)).
		Preload("DailySchedules.ScheduleItems").
		Where("class_schedule_class_id = ? AND class_schedule_is_active = ?", cls.ClassID, true).
		First(&sched).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.JsonOK(c, "", sched)
}
