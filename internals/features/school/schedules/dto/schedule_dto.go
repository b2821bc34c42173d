// file: internals/features/school/schedules/dto/schedule_dto.go
package dto

import (
	"github.com/google/uuid"

	scheduleService "sekolahku_backend/internals/features/school/schedules/service"
)

type ScheduleItemRequest struct {
	SubjectID uuid.UUID  `json:"subject_id" validate:"required"`
	TeacherID uuid.UUID  `json:"teacher_id" validate:"required"`
	RoomID    *uuid.UUID `json:"room_id"`
	StartTime string     `json:"start_time" validate:"required"`
	EndTime   string     `json:"end_time" validate:"required"`
}

type DailyScheduleRequest struct {
	Day   string                `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Items []ScheduleItemRequest `json:"items" validate:"dive"`
}

// ReplaceScheduleRequest: dokumen jadwal mingguan utuh. PUT selalu
// mengganti keseluruhan, bukan merge.
type ReplaceScheduleRequest struct {
	Year     string                 `json:"year" validate:"required,max=20"`
	Semester string                 `json:"semester" validate:"required,oneof=ganjil genap"`
	Week     []DailyScheduleRequest `json:"week" validate:"required,min=1,dive"`
}

var ReplaceScheduleMessages = map[string]string{
	"year.required":       "Tahun ajaran wajib diisi.",
	"semester.required":   "Semester wajib diisi.",
	"semester.oneof":      "Semester harus ganjil atau genap.",
	"week.required":       "Susunan jadwal mingguan wajib diisi.",
	"week.min":            "Susunan jadwal mingguan wajib diisi.",
	"day.required":        "Hari wajib diisi.",
	"day.oneof":           "Hari tidak dikenali.",
	"subject_id.required": "Mata pelajaran wajib diisi.",
	"teacher_id.required": "Guru pengampu wajib diisi.",
	"start_time.required": "Jam mulai wajib diisi.",
	"end_time.required":   "Jam selesai wajib diisi.",
}

func (r ReplaceScheduleRequest) ToWeek() []scheduleService.DayInput {
	week := make([]scheduleService.DayInput, 0, len(r.Week))
	for _, d := range r.Week {
		day := scheduleService.DayInput{Day: d.Day}
		for _, it := range d.Items {
			day.Items = append(day.Items, scheduleService.ItemInput{
				SubjectID: it.SubjectID,
				TeacherID: it.TeacherID,
				RoomID:    it.RoomID,
				StartTime: it.StartTime,
				EndTime:   it.EndTime,
			})
		}
		week = append(week, day)
	}
	return week
}
