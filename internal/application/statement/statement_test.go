package statement

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
	"github.com/kumasoglu/tekstil-api/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return ts
}

// Minimal fakes: only the methods the statement builders touch return data.

type stubCustomerRepo struct{ customer *entity.Customer }

func (r *stubCustomerRepo) Create(*entity.Customer) error { return nil }
func (r *stubCustomerRepo) GetByID(string) (*entity.Customer, error) {
	return r.customer, nil
}
func (r *stubCustomerRepo) List(int, int) ([]*entity.Customer, error)   { return nil, nil }
func (r *stubCustomerRepo) Update(*entity.Customer) error               { return nil }
func (r *stubCustomerRepo) Delete(string) error                         { return nil }
func (r *stubCustomerRepo) AdjustBalance(string, decimal.Decimal) error { return nil }
func (r *stubCustomerRepo) SetBalance(string, decimal.Decimal) error    { return nil }

type stubShipmentRepo struct{ shipments []*entity.Shipment }

func (r *stubShipmentRepo) Create(*entity.Shipment) error             { return nil }
func (r *stubShipmentRepo) GetByID(string) (*entity.Shipment, error)  { return nil, nil }
func (r *stubShipmentRepo) List(int, int) ([]*entity.Shipment, error) { return nil, nil }
func (r *stubShipmentRepo) ListByCustomer(string) ([]*entity.Shipment, error) {
	return r.shipments, nil
}
func (r *stubShipmentRepo) Update(*entity.Shipment) error { return nil }
func (r *stubShipmentRepo) Delete(string) error           { return nil }

type stubPaymentRepo struct{ payments []*entity.Payment }

func (r *stubPaymentRepo) Create(*entity.Payment) error             { return nil }
func (r *stubPaymentRepo) GetByID(string) (*entity.Payment, error)  { return nil, nil }
func (r *stubPaymentRepo) List(int, int) ([]*entity.Payment, error) { return nil, nil }
func (r *stubPaymentRepo) ListByCustomer(string) ([]*entity.Payment, error) {
	return r.payments, nil
}
func (r *stubPaymentRepo) Update(*entity.Payment) error { return nil }
func (r *stubPaymentRepo) Delete(string) error          { return nil }

type stubSupplierRepo struct{ supplier *entity.Supplier }

func (r *stubSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *stubSupplierRepo) GetByID(string) (*entity.Supplier, error) {
	return r.supplier, nil
}
func (r *stubSupplierRepo) List(int, int) ([]*entity.Supplier, error)     { return nil, nil }
func (r *stubSupplierRepo) ListByType(string) ([]*entity.Supplier, error) { return nil, nil }
func (r *stubSupplierRepo) Update(*entity.Supplier) error                 { return nil }
func (r *stubSupplierRepo) Delete(string) error                           { return nil }

type stubCostRepo struct{ costs []*entity.ProductionCost }

func (r *stubCostRepo) Create(*entity.ProductionCost) error            { return nil }
func (r *stubCostRepo) GetByID(string) (*entity.ProductionCost, error) { return nil, nil }
func (r *stubCostRepo) List(int, int) ([]*entity.ProductionCost, error) {
	return nil, nil
}
func (r *stubCostRepo) ListBySupplier(string) ([]*entity.ProductionCost, error) {
	return r.costs, nil
}
func (r *stubCostRepo) ListByLot(string) ([]*entity.ProductionCost, error) { return nil, nil }
func (r *stubCostRepo) Update(*entity.ProductionCost) error                { return nil }
func (r *stubCostRepo) Delete(string) error                                { return nil }

type stubSupplierPaymentRepo struct{ payments []*entity.SupplierPayment }

func (r *stubSupplierPaymentRepo) Create(*entity.SupplierPayment) error { return nil }
func (r *stubSupplierPaymentRepo) GetByID(string) (*entity.SupplierPayment, error) {
	return nil, nil
}
func (r *stubSupplierPaymentRepo) ListBySupplier(string) ([]*entity.SupplierPayment, error) {
	return r.payments, nil
}
func (r *stubSupplierPaymentRepo) Update(*entity.SupplierPayment) error { return nil }
func (r *stubSupplierPaymentRepo) Delete(string) error                  { return nil }

type stubSettingsRepo struct{ values map[string]string }

func (r *stubSettingsRepo) Get(key, def string) (string, error) {
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return def, nil
}
func (r *stubSettingsRepo) Set(string, string) error { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestCustomerStatement(t *testing.T) {
	uc := NewCustomerStatementUseCase(
		&stubCustomerRepo{customer: &entity.Customer{ID: "c1", Name: "Yılmaz Tekstil"}},
		&stubShipmentRepo{shipments: []*entity.Shipment{
			{ID: "s1", Date: day(t, "2024-01-10"), TotalKg: dec("120"), TotalUSD: dec("540")},
			{ID: "s2", Date: day(t, "2024-02-05"), TotalKg: dec("80"), TotalUSD: dec("360")},
		}},
		&stubPaymentRepo{payments: []*entity.Payment{
			{ID: "p1", Date: day(t, "2024-01-20"), AmountUSD: dec("300"), Method: entity.PaymentMethodTransfer},
		}},
		&stubSettingsRepo{},
	)

	resp, err := uc.Build("c1", dto.StatementRequest{})
	require.NoError(t, err)

	st := resp.Statement
	require.Len(t, st.Entries, 3)
	assert.True(t, st.Entries[0].Balance.Equal(dec("540")))
	assert.True(t, st.Entries[1].Balance.Equal(dec("240")))
	assert.True(t, st.Entries[2].Balance.Equal(dec("600")))
	assert.True(t, st.ClosingBalance.Equal(dec("600")))
	assert.Equal(t, ledger.USD, resp.Currency)
}

func TestCustomerStatementWindowed(t *testing.T) {
	uc := NewCustomerStatementUseCase(
		&stubCustomerRepo{customer: &entity.Customer{ID: "c1", Name: "Yılmaz Tekstil"}},
		&stubShipmentRepo{shipments: []*entity.Shipment{
			{ID: "s1", Date: day(t, "2024-01-10"), TotalKg: dec("120"), TotalUSD: dec("540")},
			{ID: "s2", Date: day(t, "2024-02-05"), TotalKg: dec("80"), TotalUSD: dec("360")},
		}},
		&stubPaymentRepo{},
		&stubSettingsRepo{},
	)

	resp, err := uc.Build("c1", dto.StatementRequest{StartDate: "2024-02-01"})
	require.NoError(t, err)
	require.Len(t, resp.Statement.Entries, 1)
	assert.Equal(t, "s2", resp.Statement.Entries[0].Ref)
}

func TestSupplierExtractTRY(t *testing.T) {
	uc := NewSupplierExtractUseCase(
		&stubSupplierRepo{supplier: &entity.Supplier{
			ID: "b1", Name: "Boyahane C", Type: entity.SupplierTypeDyeing,
			SettlementCurrency: "TRY",
			OpeningBalanceTRY:  dec("5000"),
		}},
		&stubCostRepo{costs: []*entity.ProductionCost{
			{ID: "c1", Date: day(t, "2024-02-10"), TotalCost: dec("16000"), BoyahaneCost: dec("16000"), Currency: "TRY"},
		}},
		&stubSupplierPaymentRepo{payments: []*entity.SupplierPayment{
			// Entered as $500 at a stored rate of 32: extract shows ₺16000.
			{ID: "sp1", Date: day(t, "2024-02-20"), AmountUSD: dec("500"),
				OriginalAmount: dec("500"), OriginalCurrency: "USD", ExchangeRate: dec("32")},
		}},
		&stubSettingsRepo{},
		testLogger(),
	)

	resp, err := uc.Build("b1")
	require.NoError(t, err)

	st := resp.Statement
	assert.Equal(t, ledger.TRY, resp.Currency)
	require.Len(t, st.Entries, 3) // opening + cost + payment
	assert.Equal(t, "Devir bakiyesi", st.Entries[0].Description)
	assert.True(t, st.Entries[1].Balance.Equal(dec("21000")))
	assert.True(t, st.Entries[2].Credit.Equal(dec("16000")))
	assert.True(t, st.ClosingBalance.Equal(dec("5000")))

	// Reconciliation identity.
	sum := st.OpeningBalance.Add(st.TotalDebit).Sub(st.TotalCredit)
	assert.True(t, st.ClosingBalance.Equal(sum))
}

func TestSupplierExtractBadStartDateDegradesToFullHistory(t *testing.T) {
	uc := NewSupplierExtractUseCase(
		&stubSupplierRepo{supplier: &entity.Supplier{
			ID: "i1", Name: "İplikçi B", Type: entity.SupplierTypeYarn,
			SettlementCurrency: "USD",
			AccrualStartDate:   "15.01.2024", // unparsable
		}},
		&stubCostRepo{costs: []*entity.ProductionCost{
			{ID: "c1", Date: day(t, "2020-06-01"), TotalCost: dec("100"), IplikCost: dec("100"), Currency: "USD"},
		}},
		&stubSupplierPaymentRepo{},
		&stubSettingsRepo{},
		testLogger(),
	)

	resp, err := uc.Build("i1")
	require.NoError(t, err)
	require.Len(t, resp.Statement.Entries, 1, "ancient entry included, window disabled")
}

func TestRenderCSV(t *testing.T) {
	resp := &dto.StatementResponse{
		Name:     "Yılmaz Tekstil",
		Currency: ledger.USD,
		Statement: &ledger.Statement{
			Currency: ledger.USD,
			Entries: []ledger.Entry{
				{Date: day(t, "2024-01-10"), Description: "Sevkiyat 120.0 kg", Debit: dec("540"), Balance: dec("540")},
			},
			TotalDebit:     dec("540"),
			ClosingBalance: dec("540"),
		},
	}

	out, err := RenderCSV(resp)
	require.NoError(t, err)

	text := string(out)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Tarih")
	assert.Contains(t, lines[2], "2024-01-10")
	assert.Contains(t, lines[2], "540.00")
	assert.Contains(t, lines[3], "Toplam")
}
