package backup

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
)

// collectionRecords flattens one named collection of the snapshot into
// generic records that CSV rendering can walk.
func collectionRecords(s *entity.Snapshot, name string) (any, error) {
	switch name {
	case "customers":
		return s.Customers, nil
	case "products":
		return s.Products, nil
	case "inventoryLots":
		return s.Lots, nil
	case "shipments":
		return s.Shipments, nil
	case "payments":
		return s.Payments, nil
	case "suppliers":
		return s.Suppliers, nil
	case "supplierPayments":
		return s.SupplierPayments, nil
	case "supplierPriceLists":
		return s.SupplierPrices, nil
	case "productionCosts":
		return s.ProductionCosts, nil
	case "rawMaterialShipments":
		return s.RawMaterialShipments, nil
	case "yarnShipments":
		return s.YarnShipments, nil
	case "yarnTypes":
		return s.YarnTypes, nil
	default:
		return nil, fmt.Errorf("%w: unknown collection %q", domain.ErrInvalidInput, name)
	}
}

// ExportCollectionCSV renders one collection as CSV. The header comes from
// the first record's keys and rows keep that column order; missing keys in
// later records render empty. Rows sort by the Name column (falling back to
// the first column) with Turkish collation so names with Ç/İ/ı/ş order the
// way the business reads them.
func (uc *UseCase) ExportCollectionCSV(ctx context.Context, collection string) ([]byte, error) {
	snapshot, err := uc.backupRepo.ExportAll(ctx)
	if err != nil {
		return nil, err
	}
	records, err := collectionRecords(snapshot, collection)
	if err != nil {
		return nil, err
	}

	// Round-trip through JSON to get flat string-keyed records without
	// per-entity column code.
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if len(rows) == 0 {
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	header := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		header = append(header, k)
	}
	sort.Strings(header)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(header))
		for i, key := range header {
			cells[i] = cellString(row[key])
		}
		out = append(out, cells)
	}

	sortCol := 0
	for i, key := range header {
		if key == "Name" {
			sortCol = i
			break
		}
	}
	c := collate.New(language.Turkish)
	sort.SliceStable(out, func(a, b int) bool {
		return c.CompareString(out[a][sortCol], out[b][sortCol]) < 0
	})

	if err := w.WriteAll(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cellString renders one JSON value as a CSV cell. Strings drop their
// quotes; everything else (numbers, booleans, nested arrays) keeps its JSON
// form.
func cellString(v json.RawMessage) string {
	if len(v) == 0 || string(v) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
