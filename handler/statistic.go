package handler

import (
	"context"
	"encoding/json"
	"time"

	"laundry_os/constants"
	"laundry_os/database"
	"laundry_os/model"
	"laundry_os/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	statsCacheKey = "stats:overview"
	statsCacheTTL = 60 * time.Second
)

type overviewStats struct {
	Customers    int64 `json:"customers"`
	OrdersTotal  int64 `json:"ordersTotal"`
	OrdersToday  int64 `json:"ordersToday"`
	ExpressQueue int64 `json:"expressQueue"`

	TodayRevenue float64 `json:"todayRevenue"`
	WeekRevenue  float64 `json:"weekRevenue"`
	MonthRevenue float64 `json:"monthRevenue"`

	RevenueGrowth float64 `json:"revenueGrowth"` // % vs yesterday
	OrdersGrowth  float64 `json:"ordersGrowth"`  // % vs yesterday

	StatusBreakdown map[string]int64 `json:"statusBreakdown"`
	TopServices     []topService     `json:"topServices"`
}

type topService struct {
	Name    string  `json:"name"`
	Pieces  int64   `json:"pieces"`
	Revenue float64 `json:"revenue"`
}

// GetStatsOverview aggregates the counter dashboard numbers. The result is
// cached in Redis for a minute; the board polls this often and the numbers
// do not need to be second-accurate.
func GetStatsOverview(c *fiber.Ctx) error {
	ctx := context.Background()

	if cached, err := Redis().Get(ctx, statsCacheKey).Bytes(); err == nil {
		var stats overviewStats
		if json.Unmarshal(cached, &stats) == nil {
			return utils.SuccessResponse(c, fiber.StatusOK, stats)
		}
	}

	db := database.DB
	var stats overviewStats

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	db.Model(&model.Customer{}).Count(&stats.Customers)
	db.Model(&model.Order{}).Count(&stats.OrdersTotal)
	db.Model(&model.Order{}).Where("created_at >= ?", todayStart).Count(&stats.OrdersToday)
	db.Model(&model.Order{}).
		Where("is_express = true AND status NOT IN ?", []model.OrderStatus{model.StatusCompleted, model.StatusPickedUp}).
		Count(&stats.ExpressQueue)

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE created_at >= ?
    `, todayStart).Scan(&stats.TodayRevenue)

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE created_at >= ?
    `, weekStart).Scan(&stats.WeekRevenue)

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE created_at >= ?
    `, monthStart).Scan(&stats.MonthRevenue)

	var yesterdayRevenue float64
	var yesterdayOrders int64
	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE created_at >= ? AND created_at < ?
    `, yesterdayStart, todayStart).Scan(&yesterdayRevenue)
	db.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).
		Count(&yesterdayOrders)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.OrdersToday), float64(yesterdayOrders))

	stats.StatusBreakdown = make(map[string]int64, len(model.AllStatuses))
	var rows []struct {
		Status string
		Count  int64
	}
	db.Raw(`
        SELECT status, COUNT(*) AS count
        FROM orders
        GROUP BY status
    `).Scan(&rows)
	for _, status := range model.AllStatuses {
		stats.StatusBreakdown[string(status)] = 0
	}
	for _, row := range rows {
		stats.StatusBreakdown[row.Status] = row.Count
	}

	db.Raw(`
        SELECT
            oi.name,
            COALESCE(SUM(oi.quantity), 0) AS pieces,
            COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.created_at >= ?
        GROUP BY oi.name
        ORDER BY revenue DESC
        LIMIT 5
    `, monthStart).Scan(&stats.TopServices)

	if payload, err := json.Marshal(stats); err == nil {
		Redis().Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetRevenueHistory serves the snapshot rows written by the nightly cron job.
func GetRevenueHistory(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	var snapshots []model.DailyRevenue
	if err := database.DB.
		Order("date desc").
		Limit(days).
		Find(&snapshots).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, snapshots)
}
