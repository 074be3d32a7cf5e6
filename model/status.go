package model

import "strings"

// OrderStatus is one of the seven processing stages an order passes through,
// from drop-off to customer pickup.
type OrderStatus string

const (
	StatusTodo      OrderStatus = "TODO"
	StatusWashers   OrderStatus = "WASHERS"
	StatusWaiting   OrderStatus = "WAITING"
	StatusDryers    OrderStatus = "DRYERS"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusPickedUp  OrderStatus = "PICKED_UP"
)

// statusRank orders the pipeline. Transitions may only keep or raise the rank.
var statusRank = map[OrderStatus]int{
	StatusTodo:      0,
	StatusWashers:   1,
	StatusWaiting:   2,
	StatusDryers:    3,
	StatusReady:     4,
	StatusCompleted: 5,
	StatusPickedUp:  6,
}

// AllStatuses in pipeline order, for filters and the stats breakdown.
var AllStatuses = []OrderStatus{
	StatusTodo, StatusWashers, StatusWaiting, StatusDryers,
	StatusReady, StatusCompleted, StatusPickedUp,
}

// ParseOrderStatus normalizes a wire value (case-insensitive) to its canonical
// form. The second return is false for anything outside the closed set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := statusRank[status]
	return status, ok
}

func (s OrderStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

func (s OrderStatus) Rank() int {
	return statusRank[s]
}

// CanAdvanceTo reports whether moving from s to target is legal. The pipeline
// is forward-only: a repeat of the current status is an accepted no-op, any
// backward move is rejected. Forward skips are allowed (a cashier may send an
// express order straight to READY).
func (s OrderStatus) CanAdvanceTo(target OrderStatus) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	return statusRank[target] >= statusRank[s]
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusPickedUp
}
