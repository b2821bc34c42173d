// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserModel merepresentasikan tabel users. Username unik global;
// email unik hanya jika diisi (partial unique di postgres).
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"type:varchar(100);not null;column:user_name"`
	UserUsername string    `json:"user_username" gorm:"type:varchar(50);not null;uniqueIndex;column:user_username"`
	UserEmail    *string   `json:"user_email,omitempty" gorm:"type:varchar(255);uniqueIndex;column:user_email"`
	UserPassword string    `json:"-" gorm:"type:varchar(100);not null;column:user_password"`
	UserType     string    `json:"user_type" gorm:"type:varchar(20);not null;column:user_type"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

// SetPassword menyimpan hash bcrypt, bukan plaintext.
func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
