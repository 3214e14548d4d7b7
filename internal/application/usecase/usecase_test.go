package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type memLotRepo struct{ lots map[string]*entity.Lot }

func (r *memLotRepo) Create(l *entity.Lot) error                  { r.lots[l.ID] = l; return nil }
func (r *memLotRepo) GetByID(id string) (*entity.Lot, error)      { return r.lots[id], nil }
func (r *memLotRepo) GetForUpdate(id string) (*entity.Lot, error) { return r.lots[id], nil }
func (r *memLotRepo) List(_ repository.LotFilter, _, _ int) ([]*entity.Lot, error) {
	return nil, nil
}
func (r *memLotRepo) Update(l *entity.Lot) error          { r.lots[l.ID] = l; return nil }
func (r *memLotRepo) UpdateRemaining(l *entity.Lot) error { r.lots[l.ID] = l; return nil }
func (r *memLotRepo) Delete(id string) error              { delete(r.lots, id); return nil }

type memProductRepo struct{ products map[string]*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error             { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *memProductRepo) List(_, _ int) ([]*entity.Product, error)   { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error             { r.products[p.ID] = p; return nil }
func (r *memProductRepo) Delete(id string) error                     { delete(r.products, id); return nil }

type memCustomerRepo struct{ customers map[string]*entity.Customer }

func (r *memCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *memCustomerRepo) List(_, _ int) ([]*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) Update(c *entity.Customer) error           { r.customers[c.ID] = c; return nil }
func (r *memCustomerRepo) Delete(id string) error                    { delete(r.customers, id); return nil }
func (r *memCustomerRepo) AdjustBalance(id string, delta decimal.Decimal) error {
	c := r.customers[id]
	if c == nil {
		return domain.ErrNotFound
	}
	c.Balance = c.Balance.Add(delta)
	return nil
}
func (r *memCustomerRepo) SetBalance(id string, balance decimal.Decimal) error {
	c := r.customers[id]
	if c == nil {
		return domain.ErrNotFound
	}
	c.Balance = balance
	return nil
}

type memShipmentRepo struct{ shipments []*entity.Shipment }

func (r *memShipmentRepo) Create(*entity.Shipment) error             { return nil }
func (r *memShipmentRepo) GetByID(string) (*entity.Shipment, error)  { return nil, nil }
func (r *memShipmentRepo) List(int, int) ([]*entity.Shipment, error) { return nil, nil }
func (r *memShipmentRepo) ListByCustomer(string) ([]*entity.Shipment, error) {
	return r.shipments, nil
}
func (r *memShipmentRepo) Update(*entity.Shipment) error { return nil }
func (r *memShipmentRepo) Delete(string) error           { return nil }

type memPaymentRepo struct{ payments []*entity.Payment }

func (r *memPaymentRepo) Create(*entity.Payment) error             { return nil }
func (r *memPaymentRepo) GetByID(string) (*entity.Payment, error)  { return nil, nil }
func (r *memPaymentRepo) List(int, int) ([]*entity.Payment, error) { return nil, nil }
func (r *memPaymentRepo) ListByCustomer(string) ([]*entity.Payment, error) {
	return r.payments, nil
}
func (r *memPaymentRepo) Update(*entity.Payment) error { return nil }
func (r *memPaymentRepo) Delete(string) error          { return nil }

func TestLotCreateDerivesStatus(t *testing.T) {
	lots := &memLotRepo{lots: map[string]*entity.Lot{}}
	products := &memProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Süprem 30/1"},
	}}
	uc := NewLotUseCase(lots, products)

	lot, err := uc.Create(dto.CreateLotRequest{
		ProductID: "p1", Party: "P-2409", TotalKg: dec("500"), Date: "2024-01-05",
	})
	require.NoError(t, err)
	assert.True(t, lot.RemainingKg.Equal(dec("500")))
	assert.Equal(t, entity.LotStatusInStock, lot.Status)
}

func TestLotUpdateShiftsRemainingByTotalDelta(t *testing.T) {
	lots := &memLotRepo{lots: map[string]*entity.Lot{
		"l1": {
			ID: "l1", ProductID: "p1", Party: "P-2409",
			TotalKg: dec("500"), RemainingKg: dec("200"), Status: entity.LotStatusPartial,
		},
	}}
	uc := NewLotUseCase(lots, &memProductRepo{products: map[string]*entity.Product{}})

	// 300 kg were consumed. Correcting total to 450 must keep that
	// consumption: remaining becomes 150.
	lot, err := uc.Update("l1", dto.UpdateLotRequest{
		Party: "P-2409", TotalKg: dec("450"), Date: "2024-01-05",
	})
	require.NoError(t, err)
	assert.True(t, lot.RemainingKg.Equal(dec("150")))
	assert.Equal(t, entity.LotStatusPartial, lot.Status)

	// Correcting total below consumed kg is rejected.
	_, err = uc.Update("l1", dto.UpdateLotRequest{
		Party: "P-2409", TotalKg: dec("100"), Date: "2024-01-05",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerRebuildBalance(t *testing.T) {
	customers := &memCustomerRepo{customers: map[string]*entity.Customer{
		"c1": {ID: "c1", Name: "Yılmaz Tekstil", Balance: dec("999")}, // drifted
	}}
	uc := NewCustomerUseCase(
		customers,
		&memShipmentRepo{shipments: []*entity.Shipment{
			{ID: "s1", CustomerID: "c1", TotalUSD: dec("540")},
			{ID: "s2", CustomerID: "c1", TotalUSD: dec("360")},
		}},
		&memPaymentRepo{payments: []*entity.Payment{
			{ID: "p1", CustomerID: "c1", AmountUSD: dec("300")},
		}},
	)

	balance, err := uc.RebuildBalance("c1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("600")))
	assert.True(t, customers.customers["c1"].Balance.Equal(dec("600")))
}

func TestSettingsRate(t *testing.T) {
	settings := &memSettingsRepo{values: map[string]string{}}
	uc := NewSettingsUseCase(settings)

	rate, err := uc.GetRate()
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("30.50")), "default when unset")

	require.NoError(t, uc.SetRate(dec("33.25")))
	rate, err = uc.GetRate()
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("33.25")))

	assert.ErrorIs(t, uc.SetRate(decimal.Zero), domain.ErrInvalidInput)
}

type memSettingsRepo struct{ values map[string]string }

func (r *memSettingsRepo) Get(key, def string) (string, error) {
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return def, nil
}
func (r *memSettingsRepo) Set(key, value string) error { r.values[key] = value; return nil }
