package procurement

import (
	"context"

	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// TxRunner runs a procurement command inside one database transaction. The
// closure receives tx-bound repositories, so a raw-material or yarn receipt
// and the production cost it synthesizes commit or roll back together.
type TxRunner interface {
	RunProcurement(ctx context.Context, fn func(
		costRepo repository.ProductionCostRepository,
		rawRepo repository.RawMaterialRepository,
		yarnRepo repository.YarnShipmentRepository,
		supplierPaymentRepo repository.SupplierPaymentRepository,
	) error) error
}
