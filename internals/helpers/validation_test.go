package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Username string  `json:"username" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Age      int     `json:"age" validate:"min=1"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid input returns nil", func(t *testing.T) {
		errs := ValidateStruct(&sampleForm{Username: "budi", Age: 17}, nil)
		assert.Nil(t, errs)
	})

	t.Run("errors keyed by json field name", func(t *testing.T) {
		bad := "bukan-email"
		errs := ValidateStruct(&sampleForm{Email: &bad, Age: 1}, nil)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "username")
		assert.Contains(t, errs, "email")
		assert.NotContains(t, errs, "Username")
	})

	t.Run("override wins over default translation", func(t *testing.T) {
		errs := ValidateStruct(&sampleForm{Age: 1}, map[string]string{
			"username.required": "Username wajib diisi.",
		})
		require.NotNil(t, errs)
		require.Len(t, errs["username"], 1)
		assert.Equal(t, "Username wajib diisi.", errs["username"][0])
	})

	t.Run("untranslated fields still get a message", func(t *testing.T) {
		errs := ValidateStruct(&sampleForm{Username: "budi", Age: 0}, nil)
		require.NotNil(t, errs)
		require.Len(t, errs["age"], 1)
		assert.NotEmpty(t, errs["age"][0])
	})
}
