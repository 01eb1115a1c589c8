package utils

import (
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeSummaryScheduler sets up the periodic course summary refresh.
// Aggregates are also recomputed synchronously after each review write; the
// scheduler catches anything that slipped through (crashes, manual DB edits).
func InitializeSummaryScheduler() {
	log.Println("[SUMMARY-SCHEDULER] Initializing summary scheduler...")

	c := cron.New()

	// Refresh every 10 minutes
	c.AddFunc("*/10 * * * *", func() {
		log.Println("[SUMMARY-SCHEDULER] Recomputing course summaries...")
		RecomputeAllSummaries()
	})

	c.Start()
	log.Println("[SUMMARY-SCHEDULER] Summary scheduler started - runs every 10 minutes")
}
