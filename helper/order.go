package helper

import (
	"fmt"
	"math"
	"time"

	"laundry_os/constants"
	"laundry_os/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemsTotal sums price*quantity over the submitted line items.
func ItemsTotal(items []model.OrderItemInput) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalMatches checks the submitted total against the item sum within the
// rounding tolerance.
func TotalMatches(items []model.OrderItemInput, total float64) bool {
	return math.Abs(ItemsTotal(items)-total) <= TotalTolerance
}

// ValidateItem enforces the per-item gate: non-empty name, price ≥ 0,
// quantity ≥ 1.
func ValidateItem(item model.OrderItemInput) error {
	if item.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if item.Price < 0 {
		return fmt.Errorf("item %q has negative price", item.Name)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("item %q has quantity %d, must be at least 1", item.Name, item.Quantity)
	}
	return nil
}

func IsValidPaymentMethod(method string) bool {
	switch method {
	case model.PaymentCash, model.PaymentCard, model.PaymentOnCollection:
		return true
	}
	return false
}

// StatusUpdates computes the column updates for a lifecycle transition. The
// milestone timestamps are set-once: entering COMPLETED stamps completedAt
// only if it is still unset, entering PICKED_UP stamps pickedUpAt likewise.
// A direct jump to PICKED_UP backfills completedAt, since a collected order
// has necessarily been completed. Pure; the caller applies the map.
func StatusUpdates(order model.Order, target model.OrderStatus, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"status": target}
	if target == model.StatusCompleted && order.CompletedAt == nil {
		updates["completed_at"] = now
	}
	if target == model.StatusPickedUp && order.PickedUpAt == nil {
		updates["picked_up_at"] = now
		if order.CompletedAt == nil {
			updates["completed_at"] = now
		}
	}
	return updates
}

// FormatOrderNumber renders a sequence value as the display code, LOS-000042.
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("%s%06d", constants.ORDER_NUMBER_PREFIX, seq)
}

// NextOrderNumber allocates the next display code from the counter row,
// locking it FOR UPDATE so concurrent creations serialize. Must run inside
// the transaction that inserts the order: a rollback returns the number.
func NextOrderNumber(tx *gorm.DB) (string, error) {
	var counter model.Counter
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(model.Counter{Key: model.OrderNumberCounter}).
		FirstOrCreate(&counter).Error; err != nil {
		return "", err
	}

	counter.Value++
	if err := tx.Save(&counter).Error; err != nil {
		return "", err
	}

	return FormatOrderNumber(counter.Value), nil
}
