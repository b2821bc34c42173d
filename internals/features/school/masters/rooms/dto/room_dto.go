// file: internals/features/school/masters/rooms/dto/room_dto.go
package dto

import "sekolahku_backend/internals/features/school/masters/rooms/model"

type CreateRoomRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Code     *string `json:"code" validate:"omitempty,max=20"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=1"`
}

var CreateRoomMessages = map[string]string{
	"name.required": "Nama ruangan wajib diisi.",
	"name.max":      "Nama ruangan maksimal 100 karakter.",
	"code.max":      "Kode ruangan maksimal 20 karakter.",
	"capacity.min":  "Kapasitas minimal 1.",
}

func (r CreateRoomRequest) ToModel() model.RoomModel {
	return model.RoomModel{
		RoomName:     r.Name,
		RoomCode:     r.Code,
		RoomCapacity: r.Capacity,
	}
}

type UpdateRoomRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Code     *string `json:"code" validate:"omitempty,max=20"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=1"`
}

var UpdateRoomMessages = map[string]string{
	"name.max":     "Nama ruangan maksimal 100 karakter.",
	"code.max":     "Kode ruangan maksimal 20 karakter.",
	"capacity.min": "Kapasitas minimal 1.",
}

func (r UpdateRoomRequest) ApplyPatch(m *model.RoomModel) {
	if r.Name != nil {
		m.RoomName = *r.Name
	}
	if r.Code != nil {
		m.RoomCode = r.Code
	}
	if r.Capacity != nil {
		m.RoomCapacity = r.Capacity
	}
}
