// file: internals/features/users/users/controller/auth_controller.go
package controller

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/users/users/dto"
	"sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// profileClaims melengkapi claims dengan id profil sesuai tipe user,
// supaya endpoint guru/siswa tidak perlu query profil lagi.
func (ctl *AuthController) profileClaims(ctx context.Context, user *model.UserModel, claims jwt.MapClaims) error {
	switch user.UserType {
	case constants.RoleTeacher:
		var tp model.TeacherProfileModel
		err := ctl.DB.WithContext(ctx).
			Where("teacher_profile_user_id = ?", user.UserID).
			First(&tp).Error
		if err == nil {
			claims["teacher_profile_id"] = tp.TeacherProfileID.String()
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	case constants.RoleStudent:
		var sp model.StudentProfileModel
		err := ctl.DB.WithContext(ctx).
			Where("student_profile_user_id = ?", user.UserID).
			First(&sp).Error
		if err == nil {
			claims["student_profile_id"] = sp.StudentProfileID.String()
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

// Login memverifikasi username+password dan menerbitkan bearer token.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.LoginMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var user model.UserModel
	err := ctl.DB.WithContext(reqCtx(c)).
		Where("user_username = ?", req.Username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !user.CheckPassword(req.Password)) {
		// pesan sengaja sama untuk username salah maupun password salah
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"user_type": user.UserType,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	if err := ctl.profileClaims(reqCtx(c), &user, claims); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(tokenTTL.Seconds()),
		"user":         user,
	})
}

// Me mengembalikan profil user login beserta profil guru/siswa bila ada.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	payload := fiber.Map{"user": user}
	switch user.UserType {
	case constants.RoleTeacher:
		var tp model.TeacherProfileModel
		if err := ctl.DB.WithContext(reqCtx(c)).
			Where("teacher_profile_user_id = ?", userID).
			First(&tp).Error; err == nil {
			payload["teacher_profile"] = tp
		}
	case constants.RoleStudent:
		var sp model.StudentProfileModel
		if err := ctl.DB.WithContext(reqCtx(c)).
			Where("student_profile_user_id = ?", userID).
			First(&sp).Error; err == nil {
			payload["student_profile"] = sp
		}
	}
	return helper.JsonOK(c, "", payload)
}

// ChangePassword mengganti password user login setelah verifikasi
// password lama.
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req, dto.ChangePasswordMessages); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if !user.CheckPassword(req.OldPassword) {
		return helper.JsonValidationError(c, map[string][]string{
			"old_password": {"Password lama tidak cocok."},
		})
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctl.DB.WithContext(reqCtx(c)).
		Model(&user).
		Update("user_password", user.UserPassword).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan password")
	}
	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}
