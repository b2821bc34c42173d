// file: internals/features/settings/dto/setting_dto.go
package dto

// SettingEntry: satu pasangan key→value. Value null berarti
// mengosongkan nilai.
type SettingEntry struct {
	Key   string  `json:"key" validate:"required,max=100"`
	Value *string `json:"value"`
}

// BulkUpdateSettingsRequest: daftar pasangan. Hanya key yang sudah
// terdaftar yang diperbarui.
type BulkUpdateSettingsRequest struct {
	Settings []SettingEntry `json:"settings" validate:"required,min=1,dive"`
}

var BulkUpdateSettingsMessages = map[string]string{
	"settings.required": "Data pengaturan wajib diisi.",
	"settings.min":      "Data pengaturan wajib diisi.",
	"key.required":      "Key pengaturan wajib diisi.",
	"key.max":           "Key pengaturan maksimal 100 karakter.",
}

func (r BulkUpdateSettingsRequest) ToMap() map[string]*string {
	out := make(map[string]*string, len(r.Settings))
	for _, e := range r.Settings {
		out[e.Key] = e.Value
	}
	return out
}
