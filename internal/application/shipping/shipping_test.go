package shipping

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// In-memory fakes. The fake tx runner hands the same fakes to the command
// closure, so mutations are visible to assertions afterwards.

type fakeStore struct {
	customers map[string]*entity.Customer
	products  map[string]*entity.Product
	lots      map[string]*entity.Lot
	shipments map[string]*entity.Shipment
	payments  map[string]*entity.Payment
	settings  map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: map[string]*entity.Customer{},
		products:  map[string]*entity.Product{},
		lots:      map[string]*entity.Lot{},
		shipments: map[string]*entity.Shipment{},
		payments:  map[string]*entity.Payment{},
		settings:  map[string]string{},
	}
}

type fakeCustomerRepo struct{ s *fakeStore }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.s.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}
func (r *fakeCustomerRepo) List(_, _ int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Update(c *entity.Customer) error           { r.s.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) Delete(id string) error                    { delete(r.s.customers, id); return nil }
func (r *fakeCustomerRepo) AdjustBalance(id string, delta decimal.Decimal) error {
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Balance = c.Balance.Add(delta)
	return nil
}
func (r *fakeCustomerRepo) SetBalance(id string, balance decimal.Decimal) error {
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Balance = balance
	return nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) List(_, _ int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error           { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error                   { delete(r.s.products, id); return nil }

type fakeLotRepo struct{ s *fakeStore }

func (r *fakeLotRepo) Create(l *entity.Lot) error             { r.s.lots[l.ID] = l; return nil }
func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) { return r.s.lots[id], nil }
func (r *fakeLotRepo) GetForUpdate(id string) (*entity.Lot, error) {
	return r.s.lots[id], nil
}
func (r *fakeLotRepo) List(_ repository.LotFilter, _, _ int) ([]*entity.Lot, error) {
	return nil, nil
}
func (r *fakeLotRepo) Update(l *entity.Lot) error          { r.s.lots[l.ID] = l; return nil }
func (r *fakeLotRepo) UpdateRemaining(l *entity.Lot) error { r.s.lots[l.ID] = l; return nil }
func (r *fakeLotRepo) Delete(id string) error              { delete(r.s.lots, id); return nil }

type fakeShipmentRepo struct{ s *fakeStore }

func (r *fakeShipmentRepo) Create(sh *entity.Shipment) error { r.s.shipments[sh.ID] = sh; return nil }
func (r *fakeShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	return r.s.shipments[id], nil
}
func (r *fakeShipmentRepo) List(_, _ int) ([]*entity.Shipment, error) { return nil, nil }
func (r *fakeShipmentRepo) ListByCustomer(_ string) ([]*entity.Shipment, error) {
	return nil, nil
}
func (r *fakeShipmentRepo) Update(sh *entity.Shipment) error { r.s.shipments[sh.ID] = sh; return nil }
func (r *fakeShipmentRepo) Delete(id string) error           { delete(r.s.shipments, id); return nil }

type fakePaymentRepo struct{ s *fakeStore }

func (r *fakePaymentRepo) Create(p *entity.Payment) error { r.s.payments[p.ID] = p; return nil }
func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	return r.s.payments[id], nil
}
func (r *fakePaymentRepo) List(_, _ int) ([]*entity.Payment, error)           { return nil, nil }
func (r *fakePaymentRepo) ListByCustomer(_ string) ([]*entity.Payment, error) { return nil, nil }
func (r *fakePaymentRepo) Update(p *entity.Payment) error                     { r.s.payments[p.ID] = p; return nil }
func (r *fakePaymentRepo) Delete(id string) error                             { delete(r.s.payments, id); return nil }

type fakeSettingsRepo struct{ s *fakeStore }

func (r *fakeSettingsRepo) Get(key, def string) (string, error) {
	if v, ok := r.s.settings[key]; ok {
		return v, nil
	}
	return def, nil
}
func (r *fakeSettingsRepo) Set(key, value string) error { r.s.settings[key] = value; return nil }

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	repository.ShipmentRepository,
	repository.LotRepository,
	repository.CustomerRepository,
	repository.PaymentRepository,
) error) error {
	return fn(&fakeShipmentRepo{t.s}, &fakeLotRepo{t.s}, &fakeCustomerRepo{t.s}, &fakePaymentRepo{t.s})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setupShipmentUC(s *fakeStore) *ShipmentUseCase {
	return NewShipmentUseCase(&fakeTxRunner{s}, &fakeShipmentRepo{s}, &fakeCustomerRepo{s}, &fakeProductRepo{s}, &fakeLotRepo{s}, &fakeSettingsRepo{s})
}

func seedCustomerAndLot(s *fakeStore) {
	s.customers["c1"] = &entity.Customer{ID: "c1", Name: "Yılmaz Tekstil", Balance: decimal.Zero}
	s.products["p1"] = &entity.Product{ID: "p1", Name: "Süprem", Code: "SPR-30"}
	s.lots["l1"] = &entity.Lot{
		ID: "l1", ProductID: "p1", Party: "P-2409",
		TotalKg: dec("500"), RemainingKg: dec("500"), Status: entity.LotStatusInStock,
	}
}

func TestShipmentCreate(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	s.settings[SettingUSDTRYRate] = "32.00"
	uc := setupShipmentUC(s)

	sh, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		CustomerID: "c1",
		Date:       "2024-03-01",
		Lines: []dto.ShipmentLineRequest{
			{LotID: "l1", Kg: dec("120"), Tops: 5, UnitUSD: dec("4.50")},
		},
	})
	require.NoError(t, err)

	assert.True(t, sh.TotalUSD.Equal(dec("540")), "total %s", sh.TotalUSD)
	assert.True(t, s.customers["c1"].Balance.Equal(dec("540")))
	assert.True(t, s.lots["l1"].RemainingKg.Equal(dec("380")))
	assert.Equal(t, entity.LotStatusPartial, s.lots["l1"].Status)

	line := sh.Lines[0]
	assert.Equal(t, "Süprem", line.ProductName)
	assert.True(t, line.LineTotalTRY.Equal(dec("17280")), "try %s", line.LineTotalTRY)
	assert.True(t, line.VAT.IsZero())
}

func TestShipmentCreateWithVAT(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	uc := setupShipmentUC(s)

	sh, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		CustomerID:   "c1",
		Date:         "2024-03-01",
		CalculateVAT: true,
		Lines: []dto.ShipmentLineRequest{
			{LotID: "l1", Kg: dec("100"), Tops: 4, UnitUSD: dec("5")},
		},
	})
	require.NoError(t, err)

	line := sh.Lines[0]
	assert.True(t, line.LineTotalUSD.Equal(dec("500")))
	assert.True(t, line.VAT.Equal(dec("50")), "vat %s", line.VAT)
	assert.True(t, line.TotalWithVAT.Equal(dec("550")))
	// Lines without VAT still debit the customer by the USD line total.
	assert.True(t, s.customers["c1"].Balance.Equal(dec("500")))
}

func TestShipmentCreateInsufficientStock(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	uc := setupShipmentUC(s)

	_, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		CustomerID: "c1",
		Date:       "2024-03-01",
		Lines: []dto.ShipmentLineRequest{
			{LotID: "l1", Kg: dec("600"), Tops: 20, UnitUSD: dec("4")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestShipmentUpdateAdjustsStockAndBalance(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	uc := setupShipmentUC(s)
	ctx := context.Background()

	sh, err := uc.Create(ctx, dto.CreateShipmentRequest{
		CustomerID: "c1",
		Date:       "2024-03-01",
		Lines: []dto.ShipmentLineRequest{
			{LotID: "l1", Kg: dec("200"), Tops: 8, UnitUSD: dec("4")},
		},
	})
	require.NoError(t, err)

	// Shrink the line: 50 kg returns to the lot, balance drops by $200.
	_, err = uc.Update(ctx, sh.ID, dto.UpdateShipmentRequest{
		CustomerID: "c1",
		Date:       "2024-03-02",
		Lines: []dto.ShipmentLineRequest{
			{LotID: "l1", Kg: dec("150"), Tops: 6, UnitUSD: dec("4")},
		},
	})
	require.NoError(t, err)

	assert.True(t, s.lots["l1"].RemainingKg.Equal(dec("350")))
	assert.True(t, s.customers["c1"].Balance.Equal(dec("600")))
}

func TestShipmentUpdateRetargetsCustomer(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	s.customers["c2"] = &entity.Customer{ID: "c2", Name: "Demir Kumaş", Balance: decimal.Zero}
	uc := setupShipmentUC(s)
	ctx := context.Background()

	sh, err := uc.Create(ctx, dto.CreateShipmentRequest{
		CustomerID: "c1",
		Date:       "2024-03-01",
		Lines: []dto.ShipmentLineRequest{
			{LotID: "l1", Kg: dec("100"), Tops: 4, UnitUSD: dec("3")},
		},
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, sh.ID, dto.UpdateShipmentRequest{
		CustomerID: "c2",
		Date:       "2024-03-01",
		Lines: []dto.ShipmentLineRequest{
			{LotID: "l1", Kg: dec("100"), Tops: 4, UnitUSD: dec("3")},
		},
	})
	require.NoError(t, err)

	assert.True(t, s.customers["c1"].Balance.IsZero(), "old customer reversed")
	assert.True(t, s.customers["c2"].Balance.Equal(dec("300")))
	assert.True(t, s.lots["l1"].RemainingKg.Equal(dec("400")), "stock unchanged on retarget")
}

func TestShipmentDeleteRestoresStockAndBalance(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	uc := setupShipmentUC(s)
	ctx := context.Background()

	sh, err := uc.Create(ctx, dto.CreateShipmentRequest{
		CustomerID: "c1",
		Date:       "2024-03-01",
		Lines: []dto.ShipmentLineRequest{
			{LotID: "l1", Kg: dec("500"), Tops: 18, UnitUSD: dec("2")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LotStatusFinished, s.lots["l1"].Status)

	require.NoError(t, uc.Delete(ctx, sh.ID))

	assert.True(t, s.lots["l1"].RemainingKg.Equal(dec("500")))
	assert.Equal(t, entity.LotStatusInStock, s.lots["l1"].Status)
	assert.True(t, s.customers["c1"].Balance.IsZero())
	assert.Empty(t, s.shipments)
}

// Stock conservation: after any sequence of create/edit/delete, the sum of
// RemainingKg plus the kg held by live shipment lines equals TotalKg.
func TestStockConservation(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	uc := setupShipmentUC(s)
	ctx := context.Background()

	conserved := func() {
		held := decimal.Zero
		for _, sh := range s.shipments {
			for _, l := range sh.Lines {
				if l.LotID == "l1" {
					held = held.Add(l.Kg)
				}
			}
		}
		total := s.lots["l1"].RemainingKg.Add(held)
		assert.True(t, total.Equal(dec("500")), "conservation broken: %s", total)
	}

	sh1, err := uc.Create(ctx, dto.CreateShipmentRequest{
		CustomerID: "c1", Date: "2024-03-01",
		Lines: []dto.ShipmentLineRequest{{LotID: "l1", Kg: dec("120"), Tops: 4, UnitUSD: dec("4")}},
	})
	require.NoError(t, err)
	conserved()

	sh2, err := uc.Create(ctx, dto.CreateShipmentRequest{
		CustomerID: "c1", Date: "2024-03-02",
		Lines: []dto.ShipmentLineRequest{{LotID: "l1", Kg: dec("80"), Tops: 3, UnitUSD: dec("4")}},
	})
	require.NoError(t, err)
	conserved()

	_, err = uc.Update(ctx, sh1.ID, dto.UpdateShipmentRequest{
		CustomerID: "c1", Date: "2024-03-03",
		Lines: []dto.ShipmentLineRequest{{LotID: "l1", Kg: dec("300"), Tops: 11, UnitUSD: dec("4")}},
	})
	require.NoError(t, err)
	conserved()

	require.NoError(t, uc.Delete(ctx, sh2.ID))
	conserved()
}

// Balance conservation: the customer balance always equals the sum of live
// shipment totals minus the sum of live payments.
func TestBalanceConservation(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	shipUC := setupShipmentUC(s)
	payUC := NewPaymentUseCase(&fakeTxRunner{s}, &fakePaymentRepo{s}, &fakeCustomerRepo{s})
	ctx := context.Background()

	conserved := func() {
		expected := decimal.Zero
		for _, sh := range s.shipments {
			expected = expected.Add(sh.TotalUSD)
		}
		for _, p := range s.payments {
			expected = expected.Sub(p.AmountUSD)
		}
		assert.True(t, s.customers["c1"].Balance.Equal(expected),
			"balance %s expected %s", s.customers["c1"].Balance, expected)
	}

	sh, err := shipUC.Create(ctx, dto.CreateShipmentRequest{
		CustomerID: "c1", Date: "2024-03-01",
		Lines: []dto.ShipmentLineRequest{{LotID: "l1", Kg: dec("100"), Tops: 4, UnitUSD: dec("5")}},
	})
	require.NoError(t, err)
	conserved()

	p, err := payUC.Create(ctx, dto.CreatePaymentRequest{
		CustomerID: "c1", Date: "2024-03-05", AmountUSD: dec("200"), Method: entity.PaymentMethodTransfer,
	})
	require.NoError(t, err)
	conserved()

	_, err = payUC.Update(ctx, p.ID, dto.UpdatePaymentRequest{
		CustomerID: "c1", Date: "2024-03-05", AmountUSD: dec("350"), Method: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	conserved()

	_, err = shipUC.Update(ctx, sh.ID, dto.UpdateShipmentRequest{
		CustomerID: "c1", Date: "2024-03-06",
		Lines: []dto.ShipmentLineRequest{{LotID: "l1", Kg: dec("200"), Tops: 8, UnitUSD: dec("5")}},
	})
	require.NoError(t, err)
	conserved()

	require.NoError(t, payUC.Delete(ctx, p.ID))
	conserved()

	require.NoError(t, shipUC.Delete(ctx, sh.ID))
	conserved()
}

func TestPaymentCreateRejectsBadMethod(t *testing.T) {
	s := newFakeStore()
	seedCustomerAndLot(s)
	uc := NewPaymentUseCase(&fakeTxRunner{s}, &fakePaymentRepo{s}, &fakeCustomerRepo{s})

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID: "c1", Date: "2024-03-01", AmountUSD: dec("10"), Method: "kart",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
