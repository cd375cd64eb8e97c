package sweeper

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"visitation-backend/config"
	"visitation-backend/internal/dates"
	"visitation-backend/internal/lifecycle"
)

// Sweeper drives the bulk expiry pass over live meetings. It runs once at
// process startup to cover days the process was down, and then on a fixed
// daily schedule in the facility's time zone. The two paths never overlap:
// the startup pass finishes before the cron timer is armed.
type Sweeper struct {
	cfg    *config.SweeperConfig
	engine *lifecycle.Engine
	loc    *time.Location
	cron   *cron.Cron
	now    func() time.Time
}

// New creates a sweeper for the given engine. The configured time zone must
// resolve to a known location.
func New(cfg *config.SweeperConfig, engine *lifecycle.Engine) (*Sweeper, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load sweeper timezone %q: %w", cfg.Timezone, err)
	}
	return &Sweeper{
		cfg:    cfg,
		engine: engine,
		loc:    loc,
		now:    time.Now,
	}, nil
}

// RunStartupPass archives meetings that expired while the process was not
// running. Call it before the server starts accepting requests.
func (s *Sweeper) RunStartupPass(ctx context.Context) (int, error) {
	if !s.cfg.Enabled {
		log.Println("Sweeper is disabled. Skipping startup pass.")
		return 0, nil
	}
	return s.sweep(ctx, lifecycle.LabelStartupAutoCompleted)
}

// Start arms the daily schedule. The cron runner serializes job executions
// on one goroutine, so sweep runs never overlap each other. Cancelling ctx
// stops the schedule.
func (s *Sweeper) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		log.Println("Sweeper is disabled. Not starting schedule.")
		return nil
	}

	c := cron.New(cron.WithLocation(s.loc))
	if _, err := c.AddFunc(s.cfg.Schedule, func() {
		if _, err := s.sweep(ctx, lifecycle.LabelAutoCompleted); err != nil {
			log.Printf("Scheduled sweep failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.cfg.Schedule, err)
	}

	c.Start()
	s.cron = c
	log.Printf("Sweeper schedule %q armed in %s", s.cfg.Schedule, s.loc)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		log.Println("Sweeper schedule stopped.")
	}
}

// sweep runs one expiry pass. "Today" is evaluated once here, in the
// facility's time zone, and holds for the whole pass even across midnight.
func (s *Sweeper) sweep(ctx context.Context, label string) (int, error) {
	today := dates.Format(s.now().In(s.loc))
	log.Printf("Executing expiry sweep for %s (label %s)...", today, label)

	count, err := s.engine.SweepExpired(ctx, today, label)
	if err != nil {
		return count, err
	}
	log.Printf("Expiry sweep finished: %d meeting(s) archived.", count)
	return count, nil
}
