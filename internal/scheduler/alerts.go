// Package scheduler runs the periodic runway alert job.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/runway-service/internal/metrics"
	"github.com/Dan9191/runway-service/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// AlertSource finds companies whose runway needs attention.
type AlertSource interface {
	RunwayAlerts(ctx context.Context) ([]models.RunwayAlert, error)
}

// AlertSender delivers one alert.
type AlertSender interface {
	SendRunwayAlert(alert models.RunwayAlert) error
}

// AlertJob checks runway for every company and notifies owners.
type AlertJob struct {
	source  AlertSource
	sender  AlertSender
	log     *logrus.Logger
	metrics *metrics.Metrics
	timeout time.Duration
}

func NewAlertJob(source AlertSource, sender AlertSender, log *logrus.Logger, m *metrics.Metrics) *AlertJob {
	return &AlertJob{source: source, sender: sender, log: log, metrics: m, timeout: time.Minute}
}

// Run performs one pass and returns how many alerts were delivered. A failed
// send is logged and the remaining owners are still notified.
func (j *AlertJob) Run(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	alerts, err := j.source.RunwayAlerts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to collect runway alerts: %w", err)
	}

	sent := 0
	for _, a := range alerts {
		if err := j.sender.SendRunwayAlert(a); err != nil {
			j.log.WithFields(logrus.Fields{
				"company": a.CompanyName,
				"owner":   a.OwnerEmail,
			}).Warnf("Runway alert not delivered: %v", err)
			continue
		}
		j.metrics.ObserveAlertSent()
		sent++
	}
	return sent, nil
}

// Start schedules the job with a standard five-field cron expression and
// returns the running cron; call Stop on it to shut down.
func (j *AlertJob) Start(schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		sent, err := j.Run(context.Background())
		if err != nil {
			j.log.Errorf("Runway alert job failed: %v", err)
			return
		}
		j.log.Infof("Runway alert job sent %d alerts", sent)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid alert schedule %q: %w", schedule, err)
	}
	c.Start()
	return c, nil
}
