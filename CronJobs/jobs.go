package CronJobs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"Hearth/Models"
	"Hearth/Slack"
)

// DigestScheduler posts a morning summary of today's maintenance tasks
// and guest check-ins/check-outs
type DigestScheduler struct {
	cronScheduler  *cron.Cron
	notifier       *Slack.Notifier
	runImmediately bool
	jobID          cron.EntryID
}

// NewDigestScheduler creates a new DigestScheduler
func NewDigestScheduler(notifier *Slack.Notifier, runImmediately bool) *DigestScheduler {
	return &DigestScheduler{
		cronScheduler:  cron.New(cron.WithSeconds()),
		notifier:       notifier,
		runImmediately: runImmediately,
	}
}

// Start schedules the daily digest at 7:00 AM
func (s *DigestScheduler) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 0 7 * * *", func() {
		log.Println("Running scheduled daily digest")
		s.runDigest()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	fmt.Println("Daily digest scheduler started - will run daily at 7:00 AM")

	if s.runImmediately {
		fmt.Println("Running initial digest")
		s.runDigest()
	}
	return nil
}

// Stop terminates the scheduler
func (s *DigestScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

func (s *DigestScheduler) runDigest() {
	today := time.Now().Format("2006-01-02")

	var tasks []Models.MaintenanceTask
	if err := Models.DB.Where("date = ?", today).Find(&tasks).Error; err != nil {
		log.Println("Digest: failed to load tasks:", err)
		return
	}

	var checkIns []Models.Booking
	if err := Models.DB.Where("check_in = ?", today).Find(&checkIns).Error; err != nil {
		log.Println("Digest: failed to load check-ins:", err)
		return
	}

	var checkOuts []Models.Booking
	if err := Models.DB.Where("check_out = ?", today).Find(&checkOuts).Error; err != nil {
		log.Println("Digest: failed to load check-outs:", err)
		return
	}

	if len(tasks) == 0 && len(checkIns) == 0 && len(checkOuts) == 0 {
		log.Println("Digest: nothing scheduled for", today)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Daily digest for %s*\n", today)

	if len(tasks) > 0 {
		fmt.Fprintf(&b, "Maintenance (%d):\n", len(tasks))
		for _, t := range tasks {
			fmt.Fprintf(&b, "  - %s (%.2f)\n", t.Title, t.Amount)
		}
	}
	if len(checkIns) > 0 {
		fmt.Fprintf(&b, "Check-ins (%d):\n", len(checkIns))
		for _, bk := range checkIns {
			fmt.Fprintf(&b, "  - %s [%s]\n", bk.GuestName, bk.Source)
		}
	}
	if len(checkOuts) > 0 {
		fmt.Fprintf(&b, "Check-outs (%d):\n", len(checkOuts))
		for _, bk := range checkOuts {
			fmt.Fprintf(&b, "  - %s [%s]\n", bk.GuestName, bk.Source)
		}
	}

	if err := s.notifier.Post(b.String()); err != nil {
		log.Println("Digest: failed to post to Slack:", err)
	}
}
