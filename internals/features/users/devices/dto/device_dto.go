// file: internals/features/users/devices/dto/device_dto.go
package dto

type RegisterDeviceRequest struct {
	Identifier string  `json:"identifier" validate:"required,max=100"`
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Platform   *string `json:"platform" validate:"omitempty,max=100"`
}

var RegisterDeviceMessages = map[string]string{
	"identifier.required": "Identifier perangkat wajib diisi.",
	"identifier.max":      "Identifier perangkat maksimal 100 karakter.",
	"name.max":            "Nama perangkat maksimal 255 karakter.",
	"platform.max":        "Platform maksimal 100 karakter.",
}
