package model

import "testing"

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want OrderStatus
		ok   bool
	}{
		{"TODO", StatusTodo, true},
		{"washers", StatusWashers, true},
		{"Waiting", StatusWaiting, true},
		{"dryers", StatusDryers, true},
		{"READY", StatusReady, true},
		{"completed", StatusCompleted, true},
		{"picked_up", StatusPickedUp, true},
		{"  ready  ", StatusReady, true},
		{"", "", false},
		{"DELIVERED", "", false},
		{"PICKEDUP", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOrderStatus(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseOrderStatus(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseOrderStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrderStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		want   bool
	}{
		{"single step forward", StatusTodo, StatusWashers, true},
		{"full pipeline skip", StatusTodo, StatusPickedUp, true},
		{"express straight to ready", StatusTodo, StatusReady, true},
		{"repeat is a no-op", StatusCompleted, StatusCompleted, true},
		{"ready to completed", StatusReady, StatusCompleted, true},
		{"completed to picked up", StatusCompleted, StatusPickedUp, true},
		{"backward one step", StatusDryers, StatusWaiting, false},
		{"backward to start", StatusPickedUp, StatusTodo, false},
		{"completed back to ready", StatusCompleted, StatusReady, false},
		{"invalid target", StatusTodo, OrderStatus("LOST"), false},
		{"invalid source", OrderStatus(""), StatusTodo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
				t.Errorf("%s.CanAdvanceTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrderStatus_Rank(t *testing.T) {
	prev := -1
	for _, s := range AllStatuses {
		if s.Rank() <= prev {
			t.Errorf("status %s rank %d not strictly increasing", s, s.Rank())
		}
		prev = s.Rank()
	}
	if !StatusPickedUp.IsTerminal() {
		t.Error("PICKED_UP should be terminal")
	}
	if StatusCompleted.IsTerminal() {
		t.Error("COMPLETED should not be terminal")
	}
}
