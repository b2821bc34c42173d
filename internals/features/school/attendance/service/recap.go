// file: internals/features/school/attendance/service/recap.go
package service

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/attendance/model"
)

type StudentRef struct {
	ID   uuid.UUID
	Name string
}

type RecapRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Status      string    `json:"status"`
	Source      string    `json:"source,omitempty"`
	Reason      *string   `json:"reason,omitempty"`
	Recorded    bool      `json:"recorded"`
}

// BuildDailyRecap menyusun rekap harian satu kelas: satu baris per
// siswa. Kebijakan call site ini: siswa TANPA record pada tanggal
// tersebut dihitung "absent". Tampilan lain (daftar absensi kelas
// siswa) sengaja hanya menampilkan record yang ada, kebijakan tidak
// diseragamkan.
func BuildDailyRecap(students []StudentRef, records []model.AttendanceModel) []RecapRow {
	byStudent := make(map[uuid.UUID]model.AttendanceModel, len(records))
	for _, r := range records {
		byStudent[r.AttendanceStudentID] = r
	}

	rows := make([]RecapRow, 0, len(students))
	for _, st := range students {
		row := RecapRow{
			StudentID:   st.ID,
			StudentName: st.Name,
			Status:      model.StatusAbsent,
		}
		if rec, ok := byStudent[st.ID]; ok {
			row.Status = rec.AttendanceStatus
			row.Source = rec.AttendanceSource
			row.Reason = rec.AttendanceReason
			row.Recorded = true
		}
		rows = append(rows, row)
	}
	return rows
}
