// Package scheduler drives the recurring reminder pipeline on a fixed
// interval. Ticks are serialized: a fire that lands while the previous
// tick is still running is skipped, never queued or overlapped.
package scheduler

import (
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/logger"

	"github.com/robfig/cron/v3"
)

// ClassPassRunner issues class reminders for one date horizon.
type ClassPassRunner interface {
	RunClassPass(date time.Time, ntype string)
}

// ReviewPassRunner issues review requests for one date.
type ReviewPassRunner interface {
	RunReviewPass(date time.Time, sameDay bool)
}

type Driver struct {
	cron     *cron.Cron
	classes  ClassPassRunner
	reviews  ReviewPassRunner
	interval time.Duration
	now      func() time.Time
}

func NewDriver(classes ClassPassRunner, reviews ReviewPassRunner, interval time.Duration) *Driver {
	return &Driver{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.PrintfLogger(logger.Log)),
		)),
		classes:  classes,
		reviews:  reviews,
		interval: interval,
		now:      time.Now,
	}
}

func (d *Driver) Start() error {
	if _, err := d.cron.AddFunc("@every "+d.interval.String(), d.Tick); err != nil {
		return err
	}
	d.cron.Start()
	logger.Log.WithField("interval", d.interval.String()).Info("scheduler: started")
	return nil
}

// Stop halts the trigger and waits for an in-flight tick to finish.
func (d *Driver) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
	logger.Log.Info("scheduler: stopped")
}

// Tick runs the full pipeline once: class reminders for today and
// tomorrow, then review requests for today (held until the class start
// time plus the delay has passed) and yesterday (unconditional).
func (d *Driver) Tick() {
	started := d.now()
	today := started
	tomorrow := started.AddDate(0, 0, 1)
	yesterday := started.AddDate(0, 0, -1)

	d.classes.RunClassPass(today, domain.NotifClassToday)
	d.classes.RunClassPass(tomorrow, domain.NotifClassTomorrow)
	d.reviews.RunReviewPass(today, true)
	d.reviews.RunReviewPass(yesterday, false)

	logger.Log.WithField("elapsed", time.Since(started).String()).Debug("scheduler: tick done")
}

// RunReviewBackfill replays the review pass for the last N days, most
// recent first. Only today is gated on elapsed time; it never touches the
// class-reminder horizons.
func (d *Driver) RunReviewBackfill(days int) {
	today := d.now()
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i)
		d.reviews.RunReviewPass(date, i == 0)
	}
	logger.Log.WithField("days", days).Info("scheduler: review backfill done")
}
