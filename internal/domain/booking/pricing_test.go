package booking

import (
	"testing"

	"github.com/glowdesk/salon-api/internal/models"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name           string
		services       []models.Service
		depositPercent float64
		want           Totals
	}{
		{
			name: "sums price and duration across services",
			services: []models.Service{
				{Name: "Cut", Price: 45, DurationMin: 30},
				{Name: "Color", Price: 120.50, DurationMin: 90},
			},
			depositPercent: 20,
			want:           Totals{TotalAmount: 165.50, DurationMin: 120},
		},
		{
			name: "any deposit-requiring service triggers the deposit",
			services: []models.Service{
				{Name: "Cut", Price: 45, DurationMin: 30},
				{Name: "Balayage", Price: 200, DurationMin: 120, RequiresDeposit: true},
			},
			depositPercent: 25,
			want: Totals{
				TotalAmount:     245,
				DurationMin:     150,
				RequiresDeposit: true,
				DepositAmount:   61.25,
			},
		},
		{
			name: "unconfigured percent falls back to the default",
			services: []models.Service{
				{Name: "Perm", Price: 100, DurationMin: 60, RequiresDeposit: true},
			},
			depositPercent: 0,
			want: Totals{
				TotalAmount:     100,
				DurationMin:     60,
				RequiresDeposit: true,
				DepositAmount:   20,
			},
		},
		{
			name: "percent above 100 falls back to the default",
			services: []models.Service{
				{Name: "Perm", Price: 100, DurationMin: 60, RequiresDeposit: true},
			},
			depositPercent: 150,
			want: Totals{
				TotalAmount:     100,
				DurationMin:     60,
				RequiresDeposit: true,
				DepositAmount:   20,
			},
		},
		{
			name: "deposit rounds to cents",
			services: []models.Service{
				{Name: "Trim", Price: 33.33, DurationMin: 15, RequiresDeposit: true},
			},
			depositPercent: 20,
			want: Totals{
				TotalAmount:     33.33,
				DurationMin:     15,
				RequiresDeposit: true,
				DepositAmount:   6.67,
			},
		},
		{
			name:           "empty selection is all zeros",
			services:       nil,
			depositPercent: 20,
			want:           Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.services, tt.depositPercent)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10.014, 10.01},
		{10.016, 10.02},
		{0, 0},
		{-1.014, -1.01},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
