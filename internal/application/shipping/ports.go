package shipping

import (
	"context"

	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing repositories
// bound to that tx. Shipment and payment commands touch three collections
// (shipment/payment, lots, customer balance); running them under one tx makes
// the multi-collection mutation atomic.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		shipmentRepo repository.ShipmentRepository,
		lotRepo repository.LotRepository,
		customerRepo repository.CustomerRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
