package backup

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/pkg/logger"
)

type memBackupRepo struct {
	snapshot *entity.Snapshot
	cleared  bool
}

func (r *memBackupRepo) ExportAll(context.Context) (*entity.Snapshot, error) {
	return r.snapshot, nil
}

func (r *memBackupRepo) ImportAll(_ context.Context, s *entity.Snapshot) error {
	r.snapshot = s
	return nil
}

func (r *memBackupRepo) ClearAll(context.Context) error {
	r.snapshot = &entity.Snapshot{Settings: map[string]string{}}
	r.cleared = true
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func sampleSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Customers: []*entity.Customer{
			{ID: "c1", Name: "Yılmaz Tekstil", Balance: decimal.RequireFromString("600")},
			{ID: "c2", Name: "Çelik Kumaş"},
			{ID: "c3", Name: "Demir Tekstil"},
		},
		Products: []*entity.Product{{ID: "p1", Name: "Süprem 30/1"}},
		Settings: map[string]string{"usd_try_rate": "32.00"},
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	repo := &memBackupRepo{snapshot: sampleSnapshot()}
	uc := NewUseCase(repo, testLogger())
	ctx := context.Background()

	raw, err := uc.Export(ctx)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, snapshotVersion, env.Version)
	require.Len(t, env.Data.Customers, 3)

	// Wipe, then restore from the export.
	require.NoError(t, uc.Clear(ctx))
	assert.Empty(t, repo.snapshot.Customers)

	require.NoError(t, uc.Import(ctx, raw))
	require.Len(t, repo.snapshot.Customers, 3)
	assert.Equal(t, "Yılmaz Tekstil", repo.snapshot.Customers[0].Name)
	assert.Equal(t, "32.00", repo.snapshot.Settings["usd_try_rate"])
}

func TestImportRejectsGarbage(t *testing.T) {
	uc := NewUseCase(&memBackupRepo{snapshot: sampleSnapshot()}, testLogger())

	err := uc.Import(context.Background(), []byte("not json"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Import(context.Background(), []byte(`{"version": 99, "data": {}}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportCollectionCSV(t *testing.T) {
	uc := NewUseCase(&memBackupRepo{snapshot: sampleSnapshot()}, testLogger())

	out, err := uc.ExportCollectionCSV(context.Background(), "customers")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4) // header + 3 customers

	// Rows sort by name with Turkish collation: Çelik, Demir, Yılmaz.
	assert.Contains(t, lines[1], "c2")
	assert.Contains(t, lines[2], "c3")
	assert.Contains(t, lines[3], "c1")
}

func TestExportCollectionCSVUnknownCollection(t *testing.T) {
	uc := NewUseCase(&memBackupRepo{snapshot: sampleSnapshot()}, testLogger())

	_, err := uc.ExportCollectionCSV(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
