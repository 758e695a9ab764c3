package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	am "mali_scheduler_backend/internals/features/academics/model"
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
)

type fakeSyncer struct {
	calls int
	err   error
}

func (f *fakeSyncer) GenerateMissing(ctx context.Context) (int, int, error) {
	f.calls++
	return 2, 14, f.err
}

type fakeWarmer struct {
	invalidated, warmed int
}

func (f *fakeWarmer) Invalidate(ctx context.Context) { f.invalidated++ }
func (f *fakeWarmer) Warm(ctx context.Context) (int, error) {
	f.warmed++
	return 30, nil
}

func testConfig() Config {
	return Config{
		SessionSyncCron:  "30 2 * * *",
		CalendarWarmCron: "0 6 * * *",
		HolidayPurgeCron: "15 3 * * *",
		RetentionDays:    30,
		JobTimeout:       time.Second,
	}
}

func TestNew_RegistersJobs(t *testing.T) {
	s, err := New(testConfig(), nil, &fakeSyncer{}, &fakeWarmer{})
	require.NoError(t, err)
	// no db, no purge job
	assert.Equal(t, []string{"session-sync", "calendar-warm"}, s.Jobs())

	cfg := testConfig()
	cfg.SessionSyncCron = "-"
	cfg.CalendarWarmCron = ""
	s, err = New(cfg, nil, &fakeSyncer{}, &fakeWarmer{})
	require.NoError(t, err)
	assert.Empty(t, s.Jobs())

	s, err = New(testConfig(), nil, nil, &fakeWarmer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"calendar-warm"}, s.Jobs())
}

func TestNew_InvalidSpec(t *testing.T) {
	cfg := testConfig()
	cfg.CalendarWarmCron = "every morning"
	_, err := New(cfg, nil, &fakeSyncer{}, &fakeWarmer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar-warm")
}

func TestJobsCallCollaborators(t *testing.T) {
	syncer := &fakeSyncer{}
	warmer := &fakeWarmer{}
	s, err := New(testConfig(), nil, syncer, warmer)
	require.NoError(t, err)

	s.runSessionSync(context.Background())
	s.runCalendarWarm(context.Background())
	assert.Equal(t, 1, syncer.calls)
	assert.Equal(t, 1, warmer.warmed)
	// Warm bumps the cache version itself; a second bump per run is wasted
	assert.Zero(t, warmer.invalidated)

	syncer.err = errors.New("db down")
	s.runSessionSync(context.Background())
	assert.Equal(t, 2, syncer.calls)
}

func TestStartStop(t *testing.T) {
	s, err := New(testConfig(), nil, &fakeSyncer{}, &fakeWarmer{})
	require.NoError(t, err)
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
	assert.NoError(t, ctx.Err())
}

func TestPurgeDeletedHolidays_NilDB(t *testing.T) {
	n, err := PurgeDeletedHolidays(context.Background(), nil, time.Hour)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

type noCourses struct{}

func (noCourses) ListCourses(context.Context) ([]am.CourseModel, error) { return nil, nil }
func (noCourses) ProfessorCourses(context.Context, uuid.UUID) ([]am.CourseModel, error) {
	return nil, nil
}

type emptyHolidays struct{}

func (emptyHolidays) Snapshot(context.Context) (hsvc.Calendar, error) { return hsvc.Empty{}, nil }

// versionCache counts invalidations the way the Redis cache bumps its version.
type versionCache struct {
	version int64
	sets    int
}

func (c *versionCache) Invalidate(context.Context) { c.version++ }
func (c *versionCache) Get(context.Context) ([]ssvc.CalendarEvent, int64, bool) {
	return nil, c.version, false
}
func (c *versionCache) Set(_ context.Context, v int64, _ []ssvc.CalendarEvent) {
	if v == c.version {
		c.sets++
	}
}

func TestCalendarWarm_BumpsVersionOnce(t *testing.T) {
	cache := &versionCache{}
	calendar := ssvc.NewCalendarService(noCourses{}, emptyHolidays{}, cache)

	s, err := New(testConfig(), nil, nil, calendar)
	require.NoError(t, err)

	s.runCalendarWarm(context.Background())
	assert.Equal(t, int64(1), cache.version)
	assert.Equal(t, 1, cache.sets)
}
