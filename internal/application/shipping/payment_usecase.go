package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

func validMethod(m string) bool {
	switch m {
	case entity.PaymentMethodCash, entity.PaymentMethodTransfer, entity.PaymentMethodCheque:
		return true
	}
	return false
}

// PaymentUseCase manages customer receivables. A payment credits the
// customer: creating one decreases the balance, deleting restores it, and
// editing applies the net difference.
type PaymentUseCase struct {
	txRunner     TxRunner
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(txRunner TxRunner, paymentRepo repository.PaymentRepository, customerRepo repository.CustomerRepository) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, paymentRepo: paymentRepo, customerRepo: customerRepo}
}

// GetByID returns a payment, or ErrNotFound.
func (uc *PaymentUseCase) GetByID(id string) (*entity.Payment, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return payment, nil
}

// List returns payments newest first.
func (uc *PaymentUseCase) List(page dto.PageRequest) ([]*entity.Payment, error) {
	page.DefaultPage()
	return uc.paymentRepo.List(page.Limit, page.Offset)
}

// Create inserts the payment and credits the customer balance in one
// transaction.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*entity.Payment, error) {
	if in.CustomerID == "" || !in.AmountUSD.GreaterThan(decimal.Zero) || !validMethod(in.Method) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Date:       date,
		AmountUSD:  in.AmountUSD,
		Method:     in.Method,
		Note:       in.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.ShipmentRepository,
		_ repository.LotRepository,
		customerRepo repository.CustomerRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		return customerRepo.AdjustBalance(payment.CustomerID, payment.AmountUSD.Neg())
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Update edits a payment. When the customer is unchanged the balance moves
// by the amount difference; when it changed, the old amount is restored on
// the old customer and the new amount credited to the new one.
func (uc *PaymentUseCase) Update(ctx context.Context, id string, in dto.UpdatePaymentRequest) (*entity.Payment, error) {
	if id == "" || in.CustomerID == "" || !in.AmountUSD.GreaterThan(decimal.Zero) || !validMethod(in.Method) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	var updated *entity.Payment
	err = uc.txRunner.Run(ctx, func(
		_ repository.ShipmentRepository,
		_ repository.LotRepository,
		customerRepo repository.CustomerRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		old, err := paymentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}

		next := *old
		next.CustomerID = in.CustomerID
		next.Date = date
		next.AmountUSD = in.AmountUSD
		next.Method = in.Method
		next.Note = in.Note
		next.UpdatedAt = time.Now()
		if err := paymentRepo.Update(&next); err != nil {
			return err
		}

		if old.CustomerID != next.CustomerID {
			if err := customerRepo.AdjustBalance(old.CustomerID, old.AmountUSD); err != nil {
				return err
			}
			if err := customerRepo.AdjustBalance(next.CustomerID, next.AmountUSD.Neg()); err != nil {
				return err
			}
		} else if diff := next.AmountUSD.Sub(old.AmountUSD); !diff.IsZero() {
			if err := customerRepo.AdjustBalance(next.CustomerID, diff.Neg()); err != nil {
				return err
			}
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the payment and restores the credited amount to the
// customer balance.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.ShipmentRepository,
		_ repository.LotRepository,
		customerRepo repository.CustomerRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		payment, err := paymentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if payment == nil {
			return domain.ErrNotFound
		}
		if err := paymentRepo.Delete(id); err != nil {
			return err
		}
		return customerRepo.AdjustBalance(payment.CustomerID, payment.AmountUSD)
	})
}
