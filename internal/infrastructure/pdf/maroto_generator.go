// Package pdf renders printable documents with Maroto v2: account
// statements (customer and supplier) and shipment receipts.
//
// A4 statement layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: account name          │  "HESAP EKSTRESİ" + date   │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Tarih | Açıklama | Borç | Alacak | Bakiye           │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALS: toplam borç / toplam alacak / kalan bakiye         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Generator renders documents with Maroto v2.
type Generator struct{}

// NewGenerator builds the generator.
func NewGenerator() *Generator { return &Generator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func symbol(c ledger.Currency) string {
	if c == ledger.TRY {
		return "₺"
	}
	return "$"
}

// GenerateStatementPDF renders a customer statement or supplier extract.
func (g *Generator) GenerateStatementPDF(resp *dto.StatementResponse) ([]byte, error) {
	m := newDocument("Hesap Ekstresi - " + resp.Name)
	sym := symbol(resp.Currency)

	m.AddRows(statementHeaderRow(resp))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statementTableHeaderRow())
	for _, r := range statementEntryRows(resp.Statement.Entries, sym) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(statementTotalsRow(resp.Statement, sym))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate statement: %w", err)
	}
	return doc.GetBytes(), nil
}

func statementHeaderRow(resp *dto.StatementResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(resp.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Para birimi: "+string(resp.Currency), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("HESAP EKSTRESİ", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Tarih: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func statementTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tarih", 2, align.Left),
		h("Açıklama", 4, align.Left),
		h("Borç", 2, align.Right),
		h("Alacak", 2, align.Right),
		h("Bakiye", 2, align.Right),
	)
}

func statementEntryRows(entries []ledger.Entry, sym string) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		style := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				e.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(4).Add(text.New(
				e.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(money(e.Debit, sym), style)),
			col.New(2).Add(text.New(money(e.Credit, sym), style)),
			col.New(2).Add(text.New(money(e.Balance, sym), style)),
		))
	}
	return result
}

func statementTotalsRow(st *ledger.Statement, sym string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("KALAN BAKİYE:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New(money(st.ClosingBalance, sym), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	})

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Toplam borç:"),
			label("Toplam alacak:"),
			grandLabel,
		),
		col.New(4).Add(
			value(money(st.TotalDebit, sym)),
			value(money(st.TotalCredit, sym)),
			grandValue,
		),
	)
}

// GenerateReceiptPDF renders a shipment receipt ("sevk irsaliyesi"). TRY
// columns appear only when the shipment was created with ShowTRYInReceipt.
func (g *Generator) GenerateReceiptPDF(shipment *entity.Shipment, customer *entity.Customer) ([]byte, error) {
	m := newDocument("Sevk İrsaliyesi")

	m.AddRows(receiptHeaderRow(shipment, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receiptTableHeaderRow(shipment.ShowTRYInReceipt))
	for _, r := range receiptLineRows(shipment) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(receiptTotalsRow(shipment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func receiptHeaderRow(shipment *entity.Shipment, customer *entity.Customer) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(shipment.Note, " "), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SEVK İRSALİYESİ", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Tarih: "+shipment.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func receiptTableHeaderRow(showTRY bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	if showTRY {
		return row.New(8).Add(
			h("Kumaş / Parti", 4, align.Left),
			h("Kg", 2, align.Right),
			h("Top", 1, align.Center),
			h("Birim $", 2, align.Right),
			h("Tutar $", 2, align.Right),
			h("Tutar ₺", 1, align.Right),
		)
	}
	return row.New(8).Add(
		h("Kumaş / Parti", 5, align.Left),
		h("Kg", 2, align.Right),
		h("Top", 1, align.Center),
		h("Birim $", 2, align.Right),
		h("Tutar $", 2, align.Right),
	)
}

func receiptLineRows(shipment *entity.Shipment) []core.Row {
	result := make([]core.Row, 0, len(shipment.Lines))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	for _, l := range shipment.Lines {
		desc := fmt.Sprintf("%s / %s", l.ProductName, l.Party)
		if shipment.ShowTRYInReceipt {
			result = append(result, row.New(6).Add(
				cell(desc, 4, align.Left),
				cell(l.Kg.StringFixed(1), 2, align.Right),
				cell(fmt.Sprintf("%d", l.Tops), 1, align.Center),
				cell(l.UnitUSD.StringFixed(2), 2, align.Right),
				cell(l.LineTotalUSD.StringFixed(2), 2, align.Right),
				cell(l.LineTotalTRY.StringFixed(2), 1, align.Right),
			))
			continue
		}
		result = append(result, row.New(6).Add(
			cell(desc, 5, align.Left),
			cell(l.Kg.StringFixed(1), 2, align.Right),
			cell(fmt.Sprintf("%d", l.Tops), 1, align.Center),
			cell(l.UnitUSD.StringFixed(2), 2, align.Right),
			cell(l.LineTotalUSD.StringFixed(2), 2, align.Right),
		))
	}
	return result
}

func receiptTotalsRow(shipment *entity.Shipment) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	labels := []core.Component{label("Toplam kg:"), label("Toplam top:")}
	values := []core.Component{
		value(shipment.TotalKg.StringFixed(1)),
		value(fmt.Sprintf("%d", shipment.TotalTops)),
	}
	labels = append(labels, text.New("GENEL TOPLAM:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	}))
	values = append(values, text.New(money(shipment.TotalUSD, "$"), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	}))

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

func money(d decimal.Decimal, sym string) string {
	return sym + d.StringFixed(2)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
