// file: internals/helpers/validation.go
package helper

import (
	"reflect"
	"strings"

	localeID "github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	transID "github.com/go-playground/validator/v10/translations/id"
)

var (
	Validate *validator.Validate
	trans    ut.Translator
)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// pakai nama json field pada pesan error, bukan nama struct field
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	id := localeID.New()
	uni := ut.New(id, id)
	trans, _ = uni.GetTranslator("id")
	_ = transID.RegisterDefaultTranslations(Validate, trans)
}

// ValidationMessages mengubah validator.ValidationErrors menjadi map
// field → daftar pesan bahasa Indonesia. overrides berisi pesan khusus
// per "field.tag" (mis. "start_time.datetime") yang menang atas
// terjemahan default.
func ValidationMessages(err error, overrides map[string]string) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		msg := ""
		if overrides != nil {
			if m, ok := overrides[field+"."+fe.Tag()]; ok {
				msg = m
			} else if m, ok := overrides[field]; ok {
				msg = m
			}
		}
		if msg == "" {
			msg = fe.Translate(trans)
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// ValidateStruct menjalankan validasi dan langsung menghasilkan map pesan
// (nil jika lolos).
func ValidateStruct(s any, overrides map[string]string) map[string][]string {
	if err := Validate.Struct(s); err != nil {
		return ValidationMessages(err, overrides)
	}
	return nil
}
