package booking

import (
	"math"

	"github.com/glowdesk/salon-api/internal/models"
)

// DefaultDepositPercent is the fallback when the salon has not configured
// its own deposit percentage.
const DefaultDepositPercent = 20.0

type Totals struct {
	TotalAmount     float64
	DurationMin     int
	RequiresDeposit bool
	DepositAmount   float64
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals derives the booking totals from the selected services. The
// deposit is due when any selected service requires one, computed from the
// salon's configured percentage.
func ComputeTotals(services []models.Service, depositPercent float64) Totals {
	var t Totals
	for _, svc := range services {
		t.TotalAmount += svc.Price
		t.DurationMin += svc.DurationMin
		if svc.RequiresDeposit {
			t.RequiresDeposit = true
		}
	}
	t.TotalAmount = Round2(t.TotalAmount)

	if t.RequiresDeposit {
		pct := depositPercent
		if pct <= 0 || pct > 100 {
			pct = DefaultDepositPercent
		}
		t.DepositAmount = Round2(t.TotalAmount * pct / 100)
	}

	return t
}
