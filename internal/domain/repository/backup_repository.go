package repository

import (
	"context"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
)

// BackupRepository exports and restores the whole dataset. ImportAll and
// ClearAll run inside one transaction: a failed restore leaves the previous
// data intact.
type BackupRepository interface {
	ExportAll(ctx context.Context) (*entity.Snapshot, error)
	ImportAll(ctx context.Context, snapshot *entity.Snapshot) error
	ClearAll(ctx context.Context) error
}
