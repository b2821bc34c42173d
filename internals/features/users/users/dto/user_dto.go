// file: internals/features/users/users/dto/user_dto.go
package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var LoginMessages = map[string]string{
	"username.required": "Username wajib diisi.",
	"password.required": "Password wajib diisi.",
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

var ChangePasswordMessages = map[string]string{
	"old_password.required": "Password lama wajib diisi.",
	"new_password.required": "Password baru wajib diisi.",
	"new_password.min":      "Password baru minimal 8 karakter.",
}
