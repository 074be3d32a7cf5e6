package helper

import (
	"log"
	"time"

	"laundry_os/database"
	"laundry_os/model"

	"github.com/robfig/cron/v3"
)

var snapshotScheduler *cron.Cron

// StartRevenueSnapshotScheduler writes yesterday's totals into daily_revenues
// just after midnight, so the stats overview reads history from snapshot rows
// instead of rescanning the orders table.
func StartRevenueSnapshotScheduler() {
	snapshotScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := snapshotScheduler.AddFunc("10 0 * * *", SnapshotYesterdayRevenue)
	if err != nil {
		log.Printf("revenue snapshot scheduler init failed: %v", err)
		return
	}

	snapshotScheduler.Start()
	log.Println("revenue snapshot scheduler started (daily 00:10)")
}

func StopRevenueSnapshotScheduler() {
	if snapshotScheduler != nil {
		snapshotScheduler.Stop()
	}
}

func SnapshotYesterdayRevenue() {
	day := time.Now().AddDate(0, 0, -1)
	SnapshotRevenueFor(day)
}

// SnapshotRevenueFor upserts the snapshot row for one calendar day.
func SnapshotRevenueFor(day time.Time) {
	date := day.Format("2006-01-02")
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var snapshot model.DailyRevenue
	database.DB.Where(model.DailyRevenue{Date: date}).FirstOrInit(&snapshot)

	row := struct {
		Orders      int64
		Revenue     float64
		CashRevenue float64
		CardRevenue float64
	}{}
	err := database.DB.Raw(`
        SELECT
            COUNT(*) AS orders,
            COALESCE(SUM(total), 0) AS revenue,
            COALESCE(SUM(CASE WHEN payment_method = 'CASH' THEN total END), 0) AS cash_revenue,
            COALESCE(SUM(CASE WHEN payment_method = 'CARD' THEN total END), 0) AS card_revenue
        FROM orders
        WHERE created_at >= ? AND created_at < ?
    `, dayStart, dayEnd).Scan(&row).Error
	if err != nil {
		log.Printf("revenue snapshot query failed for %s: %v", date, err)
		return
	}

	snapshot.Date = date
	snapshot.Orders = row.Orders
	snapshot.Revenue = row.Revenue
	snapshot.CashRevenue = row.CashRevenue
	snapshot.CardRevenue = row.CardRevenue

	if err := database.DB.Save(&snapshot).Error; err != nil {
		log.Printf("revenue snapshot save failed for %s: %v", date, err)
		return
	}
	log.Printf("revenue snapshot for %s: %d orders, %.2f", date, row.Orders, row.Revenue)
}
