// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys pada c.Locals yang dihydrate oleh middleware AuthJWT.
const (
	LocUserID           = "user_id"
	LocUserType         = "user_type"
	LocTeacherProfileID = "teacher_profile_id"
	LocStudentProfileID = "student_profile_id"
)

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	switch v := c.Locals(key).(type) {
	case uuid.UUID:
		return v, v != uuid.Nil
	case string:
		id, err := uuid.Parse(v)
		return id, err == nil
	default:
		return uuid.Nil, false
	}
}

// GetUserID mengambil id user login; 401 jika tidak ada.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocUserID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
}

// GetUserType mengambil tipe user login ("" jika tidak ada).
func GetUserType(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserType).(string); ok {
		return v
	}
	return ""
}

// GetTeacherProfileID hanya valid untuk user bertipe teacher.
func GetTeacherProfileID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocTeacherProfileID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak memiliki profil guru")
}

// GetStudentProfileID hanya valid untuk user bertipe student.
func GetStudentProfileID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocStudentProfileID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak memiliki profil siswa")
}
