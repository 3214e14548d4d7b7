package statement

import (
	"bytes"
	"encoding/csv"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
)

// RenderCSV writes a statement as CSV: a title row, the column header, one
// row per entry and a closing totals row. Amounts use plain decimal strings
// so spreadsheets parse them without locale surprises.
func RenderCSV(resp *dto.StatementResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{resp.Name, string(resp.Currency)},
		{"Tarih", "Açıklama", "Borç", "Alacak", "Bakiye"},
	}
	for _, e := range resp.Statement.Entries {
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Debit.StringFixed(2),
			e.Credit.StringFixed(2),
			e.Balance.StringFixed(2),
		})
	}
	rows = append(rows, []string{
		"", "Toplam",
		resp.Statement.TotalDebit.StringFixed(2),
		resp.Statement.TotalCredit.StringFixed(2),
		resp.Statement.ClosingBalance.StringFixed(2),
	})

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
