package helper

import (
	"testing"
	"time"

	"laundry_os/model"
)

func TestTotalMatches(t *testing.T) {
	tests := []struct {
		name  string
		items []model.OrderItemInput
		total float64
		want  bool
	}{
		{
			name:  "exact match",
			items: []model.OrderItemInput{{Name: "Shirt", Price: 9.00, Quantity: 2}},
			total: 18.00,
			want:  true,
		},
		{
			name:  "mismatch beyond tolerance",
			items: []model.OrderItemInput{{Name: "Shirt", Price: 9.00, Quantity: 2}},
			total: 20.00,
			want:  false,
		},
		{
			name:  "within rounding tolerance",
			items: []model.OrderItemInput{{Name: "Duvet", Price: 33.33, Quantity: 3}},
			total: 100.00,
			want:  true,
		},
		{
			name: "multiple items",
			items: []model.OrderItemInput{
				{Name: "Suit", Price: 120.00, Quantity: 1},
				{Name: "Shirt", Price: 15.50, Quantity: 4},
			},
			total: 182.00,
			want:  true,
		},
		{
			name:  "off by two cents fails",
			items: []model.OrderItemInput{{Name: "Towel", Price: 10.00, Quantity: 1}},
			total: 10.02,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalMatches(tt.items, tt.total); got != tt.want {
				t.Errorf("TotalMatches(%v, %v) = %v, want %v", tt.items, tt.total, got, tt.want)
			}
		})
	}
}

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name    string
		item    model.OrderItemInput
		wantErr bool
	}{
		{"valid item", model.OrderItemInput{Name: "Shirt", Price: 9, Quantity: 2}, false},
		{"free item allowed", model.OrderItemInput{Name: "Rewash", Price: 0, Quantity: 1}, false},
		{"empty name", model.OrderItemInput{Price: 9, Quantity: 1}, true},
		{"negative price", model.OrderItemInput{Name: "Shirt", Price: -1, Quantity: 1}, true},
		{"zero quantity", model.OrderItemInput{Name: "Shirt", Price: 9, Quantity: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItem(tt.item)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItem(%+v) error = %v, wantErr %v", tt.item, err, tt.wantErr)
			}
		})
	}
}

func TestStatusUpdates(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	earlier := now.Add(-2 * time.Hour)

	tests := []struct {
		name            string
		order           model.Order
		target          model.OrderStatus
		wantCompletedAt bool
		wantPickedUpAt  bool
	}{
		{
			name:            "first entry to completed stamps completedAt",
			order:           model.Order{Status: model.StatusReady},
			target:          model.StatusCompleted,
			wantCompletedAt: true,
		},
		{
			name:   "repeat completed leaves completedAt untouched",
			order:  model.Order{Status: model.StatusCompleted, CompletedAt: &earlier},
			target: model.StatusCompleted,
		},
		{
			name:            "direct jump to picked up backfills completedAt",
			order:           model.Order{Status: model.StatusTodo},
			target:          model.StatusPickedUp,
			wantCompletedAt: true,
			wantPickedUpAt:  true,
		},
		{
			name:           "pickup after completion stamps only pickedUpAt",
			order:          model.Order{Status: model.StatusCompleted, CompletedAt: &earlier},
			target:         model.StatusPickedUp,
			wantPickedUpAt: true,
		},
		{
			name:   "repeat pickup leaves both untouched",
			order:  model.Order{Status: model.StatusPickedUp, CompletedAt: &earlier, PickedUpAt: &earlier},
			target: model.StatusPickedUp,
		},
		{
			name:   "intermediate move stamps nothing",
			order:  model.Order{Status: model.StatusTodo},
			target: model.StatusWashers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := StatusUpdates(tt.order, tt.target, now)

			if updates["status"] != tt.target {
				t.Errorf("status update = %v, want %v", updates["status"], tt.target)
			}

			stamped, ok := updates["completed_at"]
			if ok != tt.wantCompletedAt {
				t.Errorf("completed_at present = %v, want %v", ok, tt.wantCompletedAt)
			}
			if ok && stamped != now {
				t.Errorf("completed_at = %v, want %v", stamped, now)
			}

			stamped, ok = updates["picked_up_at"]
			if ok != tt.wantPickedUpAt {
				t.Errorf("picked_up_at present = %v, want %v", ok, tt.wantPickedUpAt)
			}
			if ok && stamped != now {
				t.Errorf("picked_up_at = %v, want %v", stamped, now)
			}
		})
	}
}

func TestFormatOrderNumber(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "LOS-000001"},
		{42, "LOS-000042"},
		{999999, "LOS-999999"},
		{1000000, "LOS-1000000"},
	}

	for _, tt := range tests {
		if got := FormatOrderNumber(tt.seq); got != tt.want {
			t.Errorf("FormatOrderNumber(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, valid := range []string{"CASH", "CARD", "ON_COLLECTION"} {
		if !IsValidPaymentMethod(valid) {
			t.Errorf("IsValidPaymentMethod(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "cash", "EFT", "CREDIT"} {
		if IsValidPaymentMethod(invalid) {
			t.Errorf("IsValidPaymentMethod(%q) = true, want false", invalid)
		}
	}
}
