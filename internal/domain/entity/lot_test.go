package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
)

func TestLotDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		total     string
		remaining string
		want      string
	}{
		{"untouched lot", "500", "500", entity.LotStatusInStock},
		{"partially consumed", "500", "120.5", entity.LotStatusPartial},
		{"exactly zero", "500", "0", entity.LotStatusFinished},
		{"over-consumed goes negative", "500", "-3", entity.LotStatusFinished},
		{"remaining above total still in stock", "500", "510", entity.LotStatusInStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lot := entity.Lot{
				TotalKg:     decimal.RequireFromString(tt.total),
				RemainingKg: decimal.RequireFromString(tt.remaining),
			}
			lot.DeriveStatus()
			assert.Equal(t, tt.want, lot.Status)
		})
	}
}

func TestProductionCostDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		total string
		paid  string
		want  string
	}{
		{"nothing paid", "1000", "0", entity.CostStatusPending},
		{"partially paid", "1000", "400", entity.CostStatusPartial},
		{"fully paid", "1000", "1000", entity.CostStatusPaid},
		{"overpaid", "1000", "1100", entity.CostStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := entity.ProductionCost{
				TotalCost:  decimal.RequireFromString(tt.total),
				PaidAmount: decimal.RequireFromString(tt.paid),
			}
			c.DeriveStatus()
			assert.Equal(t, tt.want, c.Status)
		})
	}
}
