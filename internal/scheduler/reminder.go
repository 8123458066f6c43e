package scheduler

import (
	"fmt"

	"github.com/decryptorventure/taxgo-app/internal/config"
	"github.com/decryptorventure/taxgo-app/internal/email"
	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/decryptorventure/taxgo-app/internal/websocket"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ComplianceReminder periodically recomputes the annual revenue projection
// from the ledger and warns the user about the license-fee tier they fall
// into, over the event stream and optionally by email.
type ComplianceReminder struct {
	cfg     *config.Config
	summary service.SummaryService
	hub     *websocket.Hub
	sender  *email.Sender
	cron    *cron.Cron
	log     *logrus.Logger
}

func NewComplianceReminder(
	cfg *config.Config,
	summary service.SummaryService,
	hub *websocket.Hub,
	sender *email.Sender,
	log *logrus.Logger,
) *ComplianceReminder {
	return &ComplianceReminder{
		cfg:     cfg,
		summary: summary,
		hub:     hub,
		sender:  sender,
		cron:    cron.New(),
		log:     log,
	}
}

// Start registers the daily job and launches the cron scheduler.
func (r *ComplianceReminder) Start() error {
	if _, err := r.cron.AddFunc(r.cfg.ReminderCron, r.run); err != nil {
		return fmt.Errorf("failed to schedule compliance reminder: %w", err)
	}
	r.cron.Start()
	r.log.Infof("Compliance reminder scheduled: %s", r.cfg.ReminderCron)
	return nil
}

// Stop halts the scheduler; a running job finishes first.
func (r *ComplianceReminder) Stop() {
	r.cron.Stop()
}

func (r *ComplianceReminder) run() {
	summary := r.summary.GetSummary()
	r.log.Infof("Compliance check: projection=%s license_fee=%s", summary.AnnualProjection, summary.LicenseFee)

	r.hub.Publish(websocket.EventComplianceAlert, map[string]string{
		"annual_projection": summary.AnnualProjection,
		"license_fee":       summary.LicenseFee,
		"notice":            summary.ThresholdNotice,
	})

	if r.cfg.ReminderEmail == "" || !r.sender.Enabled() {
		return
	}

	projection, err := decimal.NewFromString(summary.AnnualProjection)
	if err != nil {
		r.log.Errorf("Bad projection value %q: %v", summary.AnnualProjection, err)
		return
	}
	fee := tax.LicenseFeeFor(projection)
	if err := r.sender.SendComplianceReminder(r.cfg.ReminderEmail, projection, fee); err != nil {
		r.log.Errorf("Compliance reminder email failed: %v", err)
	}
}
