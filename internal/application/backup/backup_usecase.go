// Package backup implements full-dataset snapshot export, restore and CSV
// collection export.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
	"github.com/kumasoglu/tekstil-api/pkg/logger"
)

// Envelope wraps a snapshot with export metadata, which restore validates.
type Envelope struct {
	Version    int              `json:"version"`
	ExportedAt time.Time        `json:"exportedAt"`
	Data       *entity.Snapshot `json:"data"`
}

// snapshotVersion is bumped when the snapshot shape changes incompatibly.
const snapshotVersion = 1

// UseCase exports and restores the whole dataset.
type UseCase struct {
	backupRepo repository.BackupRepository
	log        *logger.Logger
}

// NewUseCase builds the use case.
func NewUseCase(backupRepo repository.BackupRepository, log *logger.Logger) *UseCase {
	return &UseCase{backupRepo: backupRepo, log: log}
}

// Export serializes every collection into one JSON document.
func (uc *UseCase) Export(ctx context.Context) ([]byte, error) {
	snapshot, err := uc.backupRepo.ExportAll(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(Envelope{
		Version:    snapshotVersion,
		ExportedAt: time.Now().UTC(),
		Data:       snapshot,
	}, "", "  ")
}

// Import replaces the entire dataset with the uploaded snapshot. The clear
// and the inserts run in one transaction, so a malformed snapshot cannot
// leave the database half-restored.
func (uc *UseCase) Import(ctx context.Context, raw []byte) error {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if env.Version != snapshotVersion || env.Data == nil {
		return domain.ErrInvalidInput
	}

	uc.log.Warn().
		Time("exportedAt", env.ExportedAt).
		Int("customers", len(env.Data.Customers)).
		Int("lots", len(env.Data.Lots)).
		Int("shipments", len(env.Data.Shipments)).
		Msg("replacing entire dataset from snapshot")

	return uc.backupRepo.ImportAll(ctx, env.Data)
}

// Clear wipes every collection.
func (uc *UseCase) Clear(ctx context.Context) error {
	uc.log.Warn().Msg("clearing entire dataset")
	return uc.backupRepo.ClearAll(ctx)
}
