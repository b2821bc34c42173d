// file: internals/features/school/attendance/service/status_mapper.go
package service

import (
	"errors"

	"sekolahku_backend/internals/features/school/attendance/model"
)

var ErrUnknownStatus = errors.New("status kehadiran tidak dikenal")

// statusMap memetakan token status dari klien ke token kanonik yang
// tersimpan. "pulang"/"leave_early" tersimpan sebagai "return",
// "alpha" sebagai "absent"; sisanya identitas.
var statusMap = map[string]string{
	"present":     model.StatusPresent,
	"sick":        model.StatusSick,
	"permission":  model.StatusPermission,
	"alpha":       model.StatusAbsent,
	"pulang":      model.StatusReturn,
	"leave_early": model.StatusReturn,
}

// MapStatus menerjemahkan status input ke status kanonik. Token yang
// tidak dikenal ditolak, tidak pernah disimpan apa adanya.
func MapStatus(input string) (string, error) {
	mapped, ok := statusMap[input]
	if !ok {
		return "", ErrUnknownStatus
	}
	return mapped, nil
}
