package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHomeroomStore struct {
	// teacherID -> classID wali yang dipegang
	homerooms map[uuid.UUID]*uuid.UUID
}

func newFakeHomeroomStore(teachers ...uuid.UUID) *fakeHomeroomStore {
	s := &fakeHomeroomStore{homerooms: make(map[uuid.UUID]*uuid.UUID)}
	for _, id := range teachers {
		s.homerooms[id] = nil
	}
	return s
}

func (s *fakeHomeroomStore) TeacherExists(_ context.Context, teacherID uuid.UUID) (bool, error) {
	_, ok := s.homerooms[teacherID]
	return ok, nil
}

func (s *fakeHomeroomStore) ClearHomeroom(_ context.Context, classID uuid.UUID) error {
	for id, held := range s.homerooms {
		if held != nil && *held == classID {
			s.homerooms[id] = nil
		}
	}
	return nil
}

func (s *fakeHomeroomStore) SetHomeroom(_ context.Context, teacherID, classID uuid.UUID) error {
	s.homerooms[teacherID] = &classID
	return nil
}

func TestAssignHomeroom(t *testing.T) {
	ctx := context.Background()
	classID := uuid.New()
	teacherA := uuid.New()
	teacherB := uuid.New()

	t.Run("assigns to fresh teacher", func(t *testing.T) {
		store := newFakeHomeroomStore(teacherA)
		require.NoError(t, AssignHomeroom(ctx, store, teacherA, classID))
		require.NotNil(t, store.homerooms[teacherA])
		assert.Equal(t, classID, *store.homerooms[teacherA])
	})

	t.Run("moving slot releases previous holder", func(t *testing.T) {
		store := newFakeHomeroomStore(teacherA, teacherB)
		require.NoError(t, AssignHomeroom(ctx, store, teacherA, classID))
		require.NoError(t, AssignHomeroom(ctx, store, teacherB, classID))

		assert.Nil(t, store.homerooms[teacherA], "guru lama harus dilepas")
		require.NotNil(t, store.homerooms[teacherB])
		assert.Equal(t, classID, *store.homerooms[teacherB])
	})

	t.Run("reassigning same teacher is idempotent", func(t *testing.T) {
		store := newFakeHomeroomStore(teacherA)
		require.NoError(t, AssignHomeroom(ctx, store, teacherA, classID))
		require.NoError(t, AssignHomeroom(ctx, store, teacherA, classID))
		require.NotNil(t, store.homerooms[teacherA])
		assert.Equal(t, classID, *store.homerooms[teacherA])
	})

	t.Run("unknown teacher keeps current holder", func(t *testing.T) {
		store := newFakeHomeroomStore(teacherA)
		require.NoError(t, AssignHomeroom(ctx, store, teacherA, classID))

		err := AssignHomeroom(ctx, store, uuid.New(), classID)
		assert.ErrorIs(t, err, ErrTeacherNotFound)
		require.NotNil(t, store.homerooms[teacherA], "pemegang lama tidak boleh terlepas")
		assert.Equal(t, classID, *store.homerooms[teacherA])
	})
}
