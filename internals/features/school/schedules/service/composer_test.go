package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScheduleTree(t *testing.T) {
	classID := uuid.New()
	subjectID := uuid.New()
	teacherID := uuid.New()

	t.Run("valid week keeps full structure", func(t *testing.T) {
		week := []DayInput{
			{Day: "monday", Items: []ItemInput{
				{SubjectID: subjectID, TeacherID: teacherID, StartTime: "07:00", EndTime: "08:30"},
				{SubjectID: subjectID, TeacherID: teacherID, StartTime: "08:30", EndTime: "10:00"},
			}},
			{Day: "tuesday", Items: []ItemInput{
				{SubjectID: subjectID, TeacherID: teacherID, StartTime: "07:00", EndTime: "07:45"},
			}},
		}

		tree, err := BuildScheduleTree(classID, "2025/2026", "ganjil", week)
		require.NoError(t, err)
		assert.Equal(t, classID, tree.ClassScheduleClassID)
		assert.True(t, tree.ClassScheduleIsActive)
		require.Len(t, tree.DailySchedules, 2)
		assert.Equal(t, "monday", tree.DailySchedules[0].DailyScheduleDay)
		require.Len(t, tree.DailySchedules[0].ScheduleItems, 2)
		assert.Equal(t, "08:30", tree.DailySchedules[0].ScheduleItems[1].ScheduleItemStartTime)
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		week := []DayInput{
			{Day: "monday", Items: []ItemInput{
				{SubjectID: subjectID, TeacherID: teacherID, StartTime: "07:00", EndTime: "07:00"},
			}},
		}
		_, err := BuildScheduleTree(classID, "2025/2026", "ganjil", week)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEndNotAfterStart)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		week := []DayInput{
			{Day: "friday", Items: []ItemInput{
				{SubjectID: subjectID, TeacherID: teacherID, StartTime: "10:00", EndTime: "09:00"},
			}},
		}
		_, err := BuildScheduleTree(classID, "2025/2026", "ganjil", week)
		assert.ErrorIs(t, err, ErrEndNotAfterStart)
	})

	t.Run("malformed clock is rejected", func(t *testing.T) {
		week := []DayInput{
			{Day: "monday", Items: []ItemInput{
				{SubjectID: subjectID, TeacherID: teacherID, StartTime: "7 pagi", EndTime: "08:00"},
			}},
		}
		_, err := BuildScheduleTree(classID, "2025/2026", "ganjil", week)
		assert.Error(t, err)
	})

	t.Run("day without items is kept empty", func(t *testing.T) {
		week := []DayInput{{Day: "saturday"}}
		tree, err := BuildScheduleTree(classID, "2025/2026", "ganjil", week)
		require.NoError(t, err)
		require.Len(t, tree.DailySchedules, 1)
		assert.Empty(t, tree.DailySchedules[0].ScheduleItems)
	})

	t.Run("overlapping items are allowed", func(t *testing.T) {
		// Dua item dengan jam bertumpuk untuk guru yang sama tetap
		// diterima, validasi bentrok bukan tanggung jawab layer ini.
		week := []DayInput{
			{Day: "monday", Items: []ItemInput{
				{SubjectID: subjectID, TeacherID: teacherID, StartTime: "07:00", EndTime: "09:00"},
				{SubjectID: subjectID, TeacherID: teacherID, StartTime: "08:00", EndTime: "10:00"},
			}},
		}
		tree, err := BuildScheduleTree(classID, "2025/2026", "ganjil", week)
		require.NoError(t, err)
		assert.Len(t, tree.DailySchedules[0].ScheduleItems, 2)
	})
}
