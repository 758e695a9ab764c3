// file: internals/features/calendar/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"mali_scheduler_backend/internals/configs"
)

// SessionSyncer fills sessions for scheduled courses that have none.
type SessionSyncer interface {
	GenerateMissing(ctx context.Context) (courses, created int, err error)
}

// CalendarWarmer drops and rebuilds the cached calendar in one call.
type CalendarWarmer interface {
	Warm(ctx context.Context) (int, error)
}

type Config struct {
	SessionSyncCron  string
	CalendarWarmCron string
	HolidayPurgeCron string
	RetentionDays    int
	JobTimeout       time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		SessionSyncCron:  configs.GetEnv("SESSION_SYNC_CRON", "30 2 * * *"),
		CalendarWarmCron: configs.GetEnv("CALENDAR_WARM_CRON", "0 6 * * *"),
		HolidayPurgeCron: configs.GetEnv("HOLIDAY_PURGE_CRON", "15 3 * * *"),
		RetentionDays:    configs.GetEnvInt("HOLIDAY_RETENTION_DAYS", 30),
		JobTimeout:       configs.GetEnvDuration("CRON_JOB_TIMEOUT", 4*time.Minute),
	}
}

type Scheduler struct {
	cron    *cron.Cron
	cfg     Config
	db      *gorm.DB
	syncer  SessionSyncer
	warmer  CalendarWarmer
	entries map[string]cron.EntryID
}

// New registers the jobs; an empty spec disables its job. Nil collaborators
// skip the matching job as well.
func New(cfg Config, db *gorm.DB, syncer SessionSyncer, warmer CalendarWarmer) (*Scheduler, error) {
	loc := configs.AppLocation()
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		cfg:     cfg,
		db:      db,
		syncer:  syncer,
		warmer:  warmer,
		entries: map[string]cron.EntryID{},
	}
	if cfg.JobTimeout <= 0 {
		s.cfg.JobTimeout = 4 * time.Minute
	}

	if syncer != nil {
		if err := s.add("session-sync", cfg.SessionSyncCron, s.runSessionSync); err != nil {
			return nil, err
		}
	}
	if warmer != nil {
		if err := s.add("calendar-warm", cfg.CalendarWarmCron, s.runCalendarWarm); err != nil {
			return nil, err
		}
	}
	if db != nil {
		if err := s.add("holiday-purge", cfg.HolidayPurgeCron, s.runHolidayPurge); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) add(name, spec string, job func(context.Context)) error {
	if spec == "" || spec == "-" {
		log.Printf("[SCHEDULER] %s disabled", name)
		return nil
	}
	id, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.JobTimeout)
		defer cancel()
		job(ctx)
	})
	if err != nil {
		return fmt.Errorf("%s: invalid cron %q: %w", name, spec, err)
	}
	s.entries[name] = id
	log.Printf("[SCHEDULER] %s scheduled %q", name, spec)
	return nil
}

// Jobs lists the registered job names.
func (s *Scheduler) Jobs() []string {
	out := make([]string, 0, len(s.entries))
	for _, name := range []string{"session-sync", "calendar-warm", "holiday-purge"} {
		if _, ok := s.entries[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop waits for running jobs up to ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		log.Printf("[SCHEDULER] stop timed out, jobs still running")
	}
}

/* =========================
   Jobs
   ========================= */

func (s *Scheduler) runSessionSync(ctx context.Context) {
	start := time.Now()
	courses, created, err := s.syncer.GenerateMissing(ctx)
	if err != nil {
		log.Printf("[SESSION-SYNC] error: %v", err)
		return
	}
	log.Printf("[SESSION-SYNC] courses=%d created=%d took=%s", courses, created, time.Since(start))
}

func (s *Scheduler) runCalendarWarm(ctx context.Context) {
	n, err := s.warmer.Warm(ctx)
	if err != nil {
		log.Printf("[CALENDAR-WARM] error: %v", err)
		return
	}
	log.Printf("[CALENDAR-WARM] cached %d events", n)
}

func (s *Scheduler) runHolidayPurge(ctx context.Context) {
	n, err := PurgeDeletedHolidays(ctx, s.db, time.Duration(s.cfg.RetentionDays)*24*time.Hour)
	if err != nil {
		log.Printf("[HOLIDAY-PURGE] error: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[HOLIDAY-PURGE] hard-deleted %d holidays", n)
	}
}

// PurgeDeletedHolidays hard-deletes holidays soft-deleted before now-retention.
func PurgeDeletedHolidays(ctx context.Context, db *gorm.DB, retention time.Duration) (int64, error) {
	if db == nil {
		return 0, nil
	}
	cutoff := time.Now().Add(-retention)
	res := db.WithContext(ctx).Exec(
		`DELETE FROM national_holidays WHERE national_holiday_deleted_at IS NOT NULL AND national_holiday_deleted_at < ?`,
		cutoff,
	)
	return res.RowsAffected, res.Error
}
