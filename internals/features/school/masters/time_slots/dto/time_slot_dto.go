// file: internals/features/school/masters/time_slots/dto/time_slot_dto.go
package dto

import "sekolahku_backend/internals/features/school/masters/time_slots/model"

type CreateTimeSlotRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

var CreateTimeSlotMessages = map[string]string{
	"name.required":       "Nama jam pelajaran wajib diisi.",
	"name.max":            "Nama jam pelajaran maksimal 50 karakter.",
	"start_time.required": "Jam mulai wajib diisi.",
	"end_time.required":   "Jam selesai wajib diisi.",
}

func (r CreateTimeSlotRequest) ToModel() model.TimeSlotModel {
	return model.TimeSlotModel{
		TimeSlotName:      r.Name,
		TimeSlotStartTime: r.StartTime,
		TimeSlotEndTime:   r.EndTime,
	}
}

type UpdateTimeSlotRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=50"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

var UpdateTimeSlotMessages = map[string]string{
	"name.max": "Nama jam pelajaran maksimal 50 karakter.",
}

func (r UpdateTimeSlotRequest) ApplyPatch(m *model.TimeSlotModel) {
	if r.Name != nil {
		m.TimeSlotName = *r.Name
	}
	if r.StartTime != nil {
		m.TimeSlotStartTime = *r.StartTime
	}
	if r.EndTime != nil {
		m.TimeSlotEndTime = *r.EndTime
	}
}
