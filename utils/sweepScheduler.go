package utils

import (
	"log"
	"time"

	"learnlink/database"
	"learnlink/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeSweepScheduler sets up the daily completion sweep
func InitializeSweepScheduler() *cron.Cron {
	log.Println("[SWEEP-SCHEDULER] Initializing completion sweep scheduler...")

	c := cron.New()

	// Run daily shortly after midnight so yesterday's courses get closed out
	c.AddFunc("15 0 * * *", func() {
		log.Println("[SWEEP-SCHEDULER] Running daily completion sweep...")
		updated, err := RunCompletionSweep(database.Database.Db)
		if err != nil {
			log.Printf("[SWEEP-SCHEDULER] Sweep failed: %v", err)
			return
		}
		log.Printf("[SWEEP-SCHEDULER] Completed %d bookings", updated)
	})

	c.Start()
	log.Println("[SWEEP-SCHEDULER] Completion sweep scheduler started - runs daily at 00:15")
	return c
}

// RunCompletionSweep moves every BOOKED enrollment whose course date is
// strictly in the past to COMPLETED. The status filter makes re-runs no-ops
// for rows already swept, so the sweep is idempotent and safe to re-run after
// a partial failure.
func RunCompletionSweep(db *gorm.DB) (int64, error) {
	today := time.Now().Format("2006-01-02")

	result := db.Model(&models.Enrollment{}).
		Where("status = ?", models.EnrollmentBooked).
		Where("course_id IN (?)",
			db.Model(&models.Course{}).Select("id").Where("date < ?", today)).
		Update("status", models.EnrollmentCompleted)

	return result.RowsAffected, result.Error
}
