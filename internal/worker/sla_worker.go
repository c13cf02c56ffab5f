package worker

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/triage-kit/support-engine/internal/service"
)

// StartSLAWorker schedules the proactive SLA sweep. The sweep shares its
// breach predicate with the reactive on-message check and mutates nothing,
// so running it more or less often only changes how fast breaches surface.
// An empty schedule disables the worker and returns nil.
func StartSLAWorker(schedule string, svc *service.SupportService, logger *zap.Logger) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if breached := svc.SweepSLA(); breached > 0 {
			logger.Warn("sla sweep found breaches", zap.Int("tickets", breached))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("sla sweep scheduled", zap.String("schedule", schedule))
	return c, nil
}
