package helper

import (
	"fmt"
	"math"
	"strconv"

	"laundry_os/model"
)

// Legal-tender denomination sets (South African Rand). Configuration, not
// business logic: swap these to run the register in another currency.
var (
	CashNotes = []float64{200, 100, 50, 20, 10}
	CashCoins = []float64{5, 2, 1}
)

// TotalTolerance is the rounding slack allowed when comparing an order total
// against the sum of its items.
const TotalTolerance = 0.01

type TenderResult struct {
	TotalPaid  float64 `json:"totalPaid"`
	Change     float64 `json:"change"`
	Sufficient bool    `json:"sufficient"`
}

func denominationSet(values []float64) map[float64]bool {
	set := make(map[float64]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// sumUnits folds a denomination→quantity map, rejecting unknown denominations
// and negative quantities. Map keys are the face value as a string ("200").
func sumUnits(units map[string]int, legal map[float64]bool) (float64, error) {
	var total float64
	for key, qty := range units {
		value, err := strconv.ParseFloat(key, 64)
		if err != nil || !legal[value] {
			return 0, fmt.Errorf("unknown denomination %q", key)
		}
		if qty < 0 {
			return 0, fmt.Errorf("negative quantity for denomination %q", key)
		}
		total += value * float64(qty)
	}
	return total, nil
}

// Tender computes the settlement for a cash payment: total handed over and
// change due. Pure; the caller decides what an insufficient tender means.
func Tender(orderTotal float64, notes, coins map[string]int) (TenderResult, error) {
	notesTotal, err := sumUnits(notes, denominationSet(CashNotes))
	if err != nil {
		return TenderResult{}, err
	}
	coinsTotal, err := sumUnits(coins, denominationSet(CashCoins))
	if err != nil {
		return TenderResult{}, err
	}

	totalPaid := notesTotal + coinsTotal
	return TenderResult{
		TotalPaid:  totalPaid,
		Change:     math.Max(0, totalPaid-orderTotal),
		Sufficient: totalPaid >= orderTotal,
	}, nil
}

// NormalizeTender drops zero-quantity denominations from the stored breakdown.
// Purely cosmetic for storage; the settlement math is unaffected.
func NormalizeTender(units map[string]int) map[string]int {
	if len(units) == 0 {
		return nil
	}
	out := make(map[string]int, len(units))
	for key, qty := range units {
		if qty > 0 {
			out[key] = qty
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SettleCash validates and settles a cash tender against an order total,
// returning the breakdown as persisted on the order.
func SettleCash(orderTotal float64, input *model.CashTenderInput) (*model.CashPaymentDetails, TenderResult, error) {
	if input == nil {
		input = &model.CashTenderInput{}
	}
	result, err := Tender(orderTotal, input.Notes, input.Coins)
	if err != nil {
		return nil, TenderResult{}, err
	}
	details := &model.CashPaymentDetails{
		Notes:     NormalizeTender(input.Notes),
		Coins:     NormalizeTender(input.Coins),
		TotalPaid: result.TotalPaid,
		Change:    result.Change,
	}
	return details, result, nil
}
