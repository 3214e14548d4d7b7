// Package usecase holds the plain CRUD use cases that need no transactional
// orchestration of their own.
package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// CustomerUseCase manages customers.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	shipmentRepo repository.ShipmentRepository
	paymentRepo  repository.PaymentRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(
	customerRepo repository.CustomerRepository,
	shipmentRepo repository.ShipmentRepository,
	paymentRepo repository.PaymentRepository,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		shipmentRepo: shipmentRepo,
		paymentRepo:  paymentRepo,
	}
}

// Create registers a customer with a zero balance.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Note:      in.Note,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID returns a customer or ErrNotFound.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List returns a customer page.
func (uc *CustomerUseCase) List(page dto.PageRequest) ([]*entity.Customer, error) {
	page.DefaultPage()
	return uc.customerRepo.List(page.Limit, page.Offset)
}

// Update edits contact fields. Balance is never writable through here.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	if id == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Note = in.Note
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer.
func (uc *CustomerUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.customerRepo.Delete(id)
}

// RebuildBalance recomputes the denormalized balance from the full shipment
// and payment history and overwrites the stored value. Used to repair drift
// after a direct data edit or a historical bug.
func (uc *CustomerUseCase) RebuildBalance(id string) (decimal.Decimal, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return decimal.Zero, err
	}
	if customer == nil {
		return decimal.Zero, domain.ErrNotFound
	}

	shipments, err := uc.shipmentRepo.ListByCustomer(id)
	if err != nil {
		return decimal.Zero, err
	}
	payments, err := uc.paymentRepo.ListByCustomer(id)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, sh := range shipments {
		balance = balance.Add(sh.TotalUSD)
	}
	for _, p := range payments {
		balance = balance.Sub(p.AmountUSD)
	}
	if err := uc.customerRepo.SetBalance(id, balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
