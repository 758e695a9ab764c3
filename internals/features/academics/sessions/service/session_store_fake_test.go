package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	am "mali_scheduler_backend/internals/features/academics/model"
)

// memStore keeps sessions keyed by module and date, like the unique index.
type memStore struct {
	courses    map[uuid.UUID]am.CourseModel
	professors map[uuid.UUID]string
	sessions   map[uuid.UUID]map[time.Time]am.SessionModel
	failInsert error
}

func newMemStore(courses ...am.CourseModel) *memStore {
	s := &memStore{
		courses:    map[uuid.UUID]am.CourseModel{},
		professors: map[uuid.UUID]string{},
		sessions:   map[uuid.UUID]map[time.Time]am.SessionModel{},
	}
	for _, c := range courses {
		s.courses[c.CourseID] = c
	}
	return s
}

func (s *memStore) CourseWithModules(_ context.Context, id uuid.UUID) (am.CourseModel, error) {
	c, ok := s.courses[id]
	if !ok {
		return am.CourseModel{}, ErrCourseNotFound
	}
	return c, nil
}

func (s *memStore) ScheduledCourseIDs(context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, c := range s.courses {
		if c.CourseIsActive && c.HasSchedule() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Tx works on a copy and commits only when fn succeeds.
func (s *memStore) Tx(_ context.Context, fn func(SessionWriter) error) error {
	work := map[uuid.UUID]map[time.Time]am.SessionModel{}
	for mod, byDate := range s.sessions {
		work[mod] = map[time.Time]am.SessionModel{}
		for d, row := range byDate {
			work[mod][d] = row
		}
	}
	if err := fn(&memWriter{store: s, sessions: work}); err != nil {
		return err
	}
	s.sessions = work
	return nil
}

func (s *memStore) count(moduleID uuid.UUID) int { return len(s.sessions[moduleID]) }

type memWriter struct {
	store    *memStore
	sessions map[uuid.UUID]map[time.Time]am.SessionModel
}

func (w *memWriter) DeleteModuleSessions(ids []uuid.UUID) (int, error) {
	n := 0
	for _, id := range ids {
		n += len(w.sessions[id])
		delete(w.sessions, id)
	}
	return n, nil
}

func (w *memWriter) ModulesWithSessions(ids []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, id := range ids {
		if len(w.sessions[id]) > 0 {
			out = append(out, id)
		}
	}
	return out, nil
}

func (w *memWriter) ProfessorNames(ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	for _, id := range ids {
		if name, ok := w.store.professors[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func (w *memWriter) InsertSessions(rows []am.SessionModel) (int, error) {
	if w.store.failInsert != nil {
		return 0, w.store.failInsert
	}
	n := 0
	for _, r := range rows {
		byDate, ok := w.sessions[r.SessionModuleID]
		if !ok {
			byDate = map[time.Time]am.SessionModel{}
			w.sessions[r.SessionModuleID] = byDate
		}
		if _, dup := byDate[r.SessionDate]; dup {
			continue
		}
		byDate[r.SessionDate] = r
		n++
	}
	return n, nil
}

type fixedDates []time.Time

func (f fixedDates) SessionDates(context.Context, am.CourseModel) ([]time.Time, error) {
	return f, nil
}
