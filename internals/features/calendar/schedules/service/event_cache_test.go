package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	am "mali_scheduler_backend/internals/features/academics/model"
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
)

func newRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, 10*time.Minute), mr
}

func sampleEvents() []CalendarEvent {
	return []CalendarEvent{
		{ID: "c1-1", Kind: KindSession, Title: "Pintura", Start: "2024-01-01T20:00"},
		{ID: "holiday-2024-01-01", Kind: KindHoliday, Title: "Año Nuevo", Start: "2024-01-01", AllDay: true},
	}
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, mr := newRedisCache(t)
	ctx := context.Background()

	_, v, hit := cache.Get(ctx)
	assert.False(t, hit)
	assert.Equal(t, int64(0), v)

	cache.Set(ctx, v, sampleEvents())

	got, v2, hit := cache.Get(ctx)
	require.True(t, hit)
	assert.Equal(t, v, v2)
	require.Len(t, got, 2)
	assert.Equal(t, "c1-1", got[0].ID)
	assert.Equal(t, "Año Nuevo", got[1].Title)

	assert.Equal(t, 10*time.Minute, mr.TTL("mali:calendar:events:v0"))
}

func TestRedisCache_InvalidateBumpsVersion(t *testing.T) {
	cache, _ := newRedisCache(t)
	ctx := context.Background()

	cache.Set(ctx, 0, sampleEvents())
	cache.Invalidate(ctx)

	_, v, hit := cache.Get(ctx)
	assert.False(t, hit)
	assert.Equal(t, int64(1), v)
}

func TestRedisCache_BuildThatRacedInvalidationIsNotServed(t *testing.T) {
	cache, _ := newRedisCache(t)
	ctx := context.Background()

	_, readVersion, hit := cache.Get(ctx)
	require.False(t, hit)

	// a mutation commits while the calendar is being built
	cache.Invalidate(ctx)
	cache.Set(ctx, readVersion, sampleEvents())

	_, v, hit := cache.Get(ctx)
	assert.False(t, hit)
	assert.Equal(t, readVersion+1, v)
}

func TestRedisCache_Expires(t *testing.T) {
	cache, mr := newRedisCache(t)
	ctx := context.Background()

	cache.Set(ctx, 0, sampleEvents())
	mr.FastForward(11 * time.Minute)

	_, _, hit := cache.Get(ctx)
	assert.False(t, hit)
}

func TestRedisCache_RedisDown(t *testing.T) {
	cache, mr := newRedisCache(t)
	ctx := context.Background()
	mr.Close()

	_, v, hit := cache.Get(ctx)
	assert.False(t, hit)
	assert.Equal(t, int64(-1), v)

	// must not panic or block
	cache.Set(ctx, v, sampleEvents())
	cache.Invalidate(ctx)
}

// invalidatingCourses commits a mutation (and invalidates) during the first listing.
type invalidatingCourses struct {
	cache   EventCache
	courses []am.CourseModel
	calls   int
}

func (r *invalidatingCourses) ListCourses(ctx context.Context) ([]am.CourseModel, error) {
	r.calls++
	out := append([]am.CourseModel(nil), r.courses...)
	if r.calls == 1 {
		r.courses = append(r.courses, course("Canto", "musica", "Jueves", date(2024, 1, 1), 1))
		r.cache.Invalidate(ctx)
	}
	return out, nil
}

func (r *invalidatingCourses) ProfessorCourses(context.Context, uuid.UUID) ([]am.CourseModel, error) {
	return nil, nil
}

func TestCalendarService_InvalidationDuringBuild(t *testing.T) {
	cache, _ := newRedisCache(t)
	reader := &invalidatingCourses{
		cache:   cache,
		courses: []am.CourseModel{course("Fotografía", "audiovisual", "Martes", date(2024, 1, 1), 1)},
	}
	s := NewCalendarService(reader, fakeHolidays{cal: hsvc.Empty{}}, cache)
	ctx := context.Background()

	stale, err := s.Events(ctx, "")
	require.NoError(t, err)

	fresh, err := s.Events(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, reader.calls, "the stale build must not be served from cache")
	assert.Greater(t, len(fresh), len(stale))

	again, err := s.Events(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, reader.calls)
	assert.Len(t, again, len(fresh))
}
