package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/attendance/model"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "present", want: model.StatusPresent},
		{in: "sick", want: model.StatusSick},
		{in: "permission", want: model.StatusPermission},
		{in: "alpha", want: model.StatusAbsent},
		{in: "pulang", want: model.StatusReturn},
		{in: "leave_early", want: model.StatusReturn},
		{in: "bolos", wantErr: true},
		{in: "", wantErr: true},
		{in: "PRESENT", wantErr: true}, // case sensitive, token persis
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := MapStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeScheduleStore struct {
	owners map[uuid.UUID]uuid.UUID // scheduleID → teacherID
}

func (f *fakeScheduleStore) ScheduleTeacherID(_ context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	owner, ok := f.owners[id]
	return owner, ok, nil
}

type fakeAttendanceStore struct {
	records map[string]*model.AttendanceModel
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{records: map[string]*model.AttendanceModel{}}
}

func (f *fakeAttendanceStore) key(rec *model.AttendanceModel) string {
	return fmt.Sprintf("%s|%s|%s", rec.AttendanceStudentID, rec.AttendanceScheduleID,
		time.Time(rec.AttendanceDate).Format("2006-01-02"))
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, rec *model.AttendanceModel) error {
	cp := *rec
	f.records[f.key(rec)] = &cp
	return nil
}

func TestManualAttendanceService_Submit(t *testing.T) {
	teacherID := uuid.New()
	otherTeacherID := uuid.New()
	scheduleID := uuid.New()
	studentID := uuid.New()
	date := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

	newSvc := func() (*ManualAttendanceService, *fakeAttendanceStore) {
		records := newFakeAttendanceStore()
		svc := NewManualAttendanceService(
			&fakeScheduleStore{owners: map[uuid.UUID]uuid.UUID{scheduleID: teacherID}},
			records,
		)
		return svc, records
	}

	t.Run("pulang tersimpan sebagai return", func(t *testing.T) {
		svc, records := newSvc()
		rec, err := svc.Submit(context.Background(), teacherID, SubmitInput{
			StudentID:  studentID,
			ScheduleID: scheduleID,
			Status:     "pulang",
			Date:       date,
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusReturn, rec.AttendanceStatus)
		assert.Equal(t, model.SourceManual, rec.AttendanceSource)
		require.Len(t, records.records, 1)
	})

	t.Run("present tersimpan apa adanya", func(t *testing.T) {
		svc, _ := newSvc()
		rec, err := svc.Submit(context.Background(), teacherID, SubmitInput{
			StudentID:  studentID,
			ScheduleID: scheduleID,
			Status:     "present",
			Date:       date,
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusPresent, rec.AttendanceStatus)
	})

	t.Run("guru bukan pemilik jadwal ditolak tanpa persist", func(t *testing.T) {
		svc, records := newSvc()
		_, err := svc.Submit(context.Background(), otherTeacherID, SubmitInput{
			StudentID:  studentID,
			ScheduleID: scheduleID,
			Status:     "present",
			Date:       date,
		})
		assert.ErrorIs(t, err, ErrNotScheduleOwner)
		assert.Empty(t, records.records)
	})

	t.Run("jadwal tidak dikenal", func(t *testing.T) {
		svc, records := newSvc()
		_, err := svc.Submit(context.Background(), teacherID, SubmitInput{
			StudentID:  studentID,
			ScheduleID: uuid.New(),
			Status:     "present",
			Date:       date,
		})
		assert.ErrorIs(t, err, ErrScheduleNotFound)
		assert.Empty(t, records.records)
	})

	t.Run("status tidak dikenal ditolak sebelum cek kepemilikan", func(t *testing.T) {
		svc, records := newSvc()
		_, err := svc.Submit(context.Background(), teacherID, SubmitInput{
			StudentID:  studentID,
			ScheduleID: scheduleID,
			Status:     "ghoib",
			Date:       date,
		})
		assert.ErrorIs(t, err, ErrUnknownStatus)
		assert.Empty(t, records.records)
	})

	t.Run("submit kedua menimpa record yang sama", func(t *testing.T) {
		svc, records := newSvc()
		reason := "izin keluarga"
		_, err := svc.Submit(context.Background(), teacherID, SubmitInput{
			StudentID:  studentID,
			ScheduleID: scheduleID,
			Status:     "present",
			Date:       date,
		})
		require.NoError(t, err)
		_, err = svc.Submit(context.Background(), teacherID, SubmitInput{
			StudentID:  studentID,
			ScheduleID: scheduleID,
			Status:     "permission",
			Date:       date,
			Reason:     &reason,
		})
		require.NoError(t, err)

		require.Len(t, records.records, 1) // tepat satu record untuk key itu
		for _, rec := range records.records {
			assert.Equal(t, model.StatusPermission, rec.AttendanceStatus)
			assert.Equal(t, &reason, rec.AttendanceReason)
		}
	})
}

func TestBuildDailyRecap(t *testing.T) {
	s1 := StudentRef{ID: uuid.New(), Name: "Andi"}
	s2 := StudentRef{ID: uuid.New(), Name: "Budi"}
	s3 := StudentRef{ID: uuid.New(), Name: "Citra"}

	reason := "demam"
	records := []model.AttendanceModel{
		{AttendanceStudentID: s1.ID, AttendanceStatus: model.StatusPresent, AttendanceSource: model.SourceAutomatic},
		{AttendanceStudentID: s3.ID, AttendanceStatus: model.StatusSick, AttendanceSource: model.SourceManual, AttendanceReason: &reason},
	}

	rows := BuildDailyRecap([]StudentRef{s1, s2, s3}, records)
	require.Len(t, rows, 3)

	assert.Equal(t, model.StatusPresent, rows[0].Status)
	assert.True(t, rows[0].Recorded)

	// siswa tanpa record dihitung absent pada rekap harian
	assert.Equal(t, model.StatusAbsent, rows[1].Status)
	assert.False(t, rows[1].Recorded)
	assert.Empty(t, rows[1].Source)

	assert.Equal(t, model.StatusSick, rows[2].Status)
	assert.Equal(t, &reason, rows[2].Reason)
}
