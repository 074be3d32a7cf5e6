package helper

import (
	"math"
	"testing"

	"laundry_os/model"
)

func TestTender(t *testing.T) {
	tests := []struct {
		name       string
		total      float64
		notes      map[string]int
		coins      map[string]int
		wantPaid   float64
		wantChange float64
		sufficient bool
		wantErr    bool
	}{
		{
			name:       "exact payment two fifties",
			total:      100.00,
			notes:      map[string]int{"50": 2},
			wantPaid:   100.00,
			wantChange: 0.00,
			sufficient: true,
		},
		{
			name:       "insufficient tender clamps change to zero",
			total:      137.50,
			notes:      map[string]int{"100": 1, "20": 1},
			coins:      map[string]int{"5": 1},
			wantPaid:   125.00,
			wantChange: 0.00,
			sufficient: false,
		},
		{
			name:       "overpayment returns change",
			total:      85.00,
			notes:      map[string]int{"100": 1},
			wantPaid:   100.00,
			wantChange: 15.00,
			sufficient: true,
		},
		{
			name:       "coins only",
			total:      9.00,
			coins:      map[string]int{"5": 1, "2": 2},
			wantPaid:   9.00,
			wantChange: 0.00,
			sufficient: true,
		},
		{
			name:       "zero total zero tender",
			total:      0,
			wantPaid:   0,
			wantChange: 0,
			sufficient: true,
		},
		{
			name:    "unknown note denomination",
			total:   50,
			notes:   map[string]int{"25": 2},
			wantErr: true,
		},
		{
			name:    "coin value tendered as note",
			total:   50,
			notes:   map[string]int{"5": 10},
			wantErr: true,
		},
		{
			name:    "negative quantity",
			total:   50,
			notes:   map[string]int{"50": -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tender(tt.total, tt.notes, tt.coins)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Tender() expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Tender() unexpected error: %v", err)
			}
			if math.Abs(got.TotalPaid-tt.wantPaid) > 1e-9 {
				t.Errorf("TotalPaid = %v, want %v", got.TotalPaid, tt.wantPaid)
			}
			if math.Abs(got.Change-tt.wantChange) > 1e-9 {
				t.Errorf("Change = %v, want %v", got.Change, tt.wantChange)
			}
			if got.Sufficient != tt.sufficient {
				t.Errorf("Sufficient = %v, want %v", got.Sufficient, tt.sufficient)
			}
			if got.Change < 0 {
				t.Errorf("Change = %v, must never be negative", got.Change)
			}

			// Pure: a second identical call yields the same result.
			again, err := Tender(tt.total, tt.notes, tt.coins)
			if err != nil || again != got {
				t.Errorf("Tender() not idempotent: first %+v, second %+v (err %v)", got, again, err)
			}
		})
	}
}

func TestNormalizeTender(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]int
		want map[string]int
	}{
		{"drops zero quantities", map[string]int{"200": 1, "50": 0}, map[string]int{"200": 1}},
		{"all zero collapses to nil", map[string]int{"10": 0}, nil},
		{"empty input", map[string]int{}, nil},
		{"nil input", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTender(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTender() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("NormalizeTender()[%s] = %d, want %d", k, got[k], v)
				}
			}
		})
	}
}

func TestSettleCash(t *testing.T) {
	t.Run("stores normalized breakdown with settlement", func(t *testing.T) {
		details, result, err := SettleCash(100, &model.CashTenderInput{
			Notes: map[string]int{"50": 2, "10": 0},
		})
		if err != nil {
			t.Fatalf("SettleCash() error: %v", err)
		}
		if !result.Sufficient || result.TotalPaid != 100 || result.Change != 0 {
			t.Errorf("result = %+v", result)
		}
		if _, ok := details.Notes["10"]; ok {
			t.Error("zero-quantity denomination survived normalization")
		}
		if details.TotalPaid != 100 || details.Change != 0 {
			t.Errorf("details = %+v", details)
		}
	})

	t.Run("nil tender is an insufficient zero payment", func(t *testing.T) {
		_, result, err := SettleCash(10, nil)
		if err != nil {
			t.Fatalf("SettleCash() error: %v", err)
		}
		if result.Sufficient || result.TotalPaid != 0 {
			t.Errorf("result = %+v", result)
		}
	})
}
