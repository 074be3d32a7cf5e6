package helper

import (
	"log"
	"time"

	"laundry_os/database"
	"laundry_os/model"

	"github.com/go-co-op/gocron/v2"
)

var overdueScheduler gocron.Scheduler

// OverdueAfterDays is how long a COMPLETED order may wait for collection
// before the board flags it.
const OverdueAfterDays = 7

// StartOverdueScheduler runs the uncollected-order sweep shortly after
// opening time every day.
func StartOverdueScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("SAST", 2*3600)),
	)
	if err != nil {
		log.Printf("overdue scheduler init failed: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(7, 30, 0),
			),
		),
		gocron.NewTask(FlagOverdueOrders),
	)
	if err != nil {
		log.Printf("overdue job registration failed: %v", err)
		return
	}

	overdueScheduler = s
	s.Start()
	log.Println("overdue-pickup scheduler started (daily 07:30)")
}

func StopOverdueScheduler() {
	if overdueScheduler != nil {
		_ = overdueScheduler.Shutdown()
	}
}

// FlagOverdueOrders marks COMPLETED orders that have waited past the cutoff.
// Flag only; the lifecycle status is untouched.
func FlagOverdueOrders() {
	cutoff := time.Now().UTC().AddDate(0, 0, -OverdueAfterDays)
	result := database.DB.Model(&model.Order{}).
		Where("status = ? AND overdue = false AND completed_at IS NOT NULL AND completed_at < ?",
			model.StatusCompleted, cutoff).
		Update("overdue", true)

	if result.Error != nil {
		log.Printf("overdue sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("overdue sweep flagged %d uncollected orders", result.RowsAffected)
	}
}
