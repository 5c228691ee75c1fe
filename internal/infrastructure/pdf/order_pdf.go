// Package pdf genera la versión imprimible de una orden de compra con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa              │  ORDEN DE COMPRA N° + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: nombre                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Fecha orden | Entrega esperada | Estado | Usuario │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  FOOTER: QR con el número de orden + leyenda                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

var _ usecase.OrderPDFRenderer = (*OrderRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var statusLabels = map[string]string{
	entity.OrderStatusPending:   "PENDIENTE",
	entity.OrderStatusReceived:  "RECIBIDA",
	entity.OrderStatusCancelled: "CANCELADA",
}

// ── Renderer ──────────────────────────────────────────────────────────────────

// OrderRenderer implementa usecase.OrderPDFRenderer usando Maroto v2.
type OrderRenderer struct {
	issuer string
}

// NewOrderRenderer construye el generador; issuer es el nombre que encabeza el documento.
func NewOrderRenderer(issuer string) *OrderRenderer {
	return &OrderRenderer{issuer: issuer}
}

// RenderOrder genera el PDF y devuelve sus bytes.
func (g *OrderRenderer) RenderOrder(_ context.Context, o *entity.OrderView) ([]byte, error) {
	if o == nil {
		return nil, fmt.Errorf("pdf: orden nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de compra "+o.OrderNumber, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(o))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(o.TotalAmount))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(o))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *OrderRenderer) headerRow(o *entity.OrderView) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.issuer, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Compras e inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(o.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+o.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func supplierRow(o *entity.OrderView) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(o.SupplierName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

func detailHeaderRow() core.Row {
	h := func(label string) core.Col {
		return col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorWhite, Top: 2,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Fecha de orden"),
		h("Entrega esperada"),
		h("Estado"),
		h("Registrada por"),
	)
}

func detailRow(o *entity.OrderView) core.Row {
	expected := "-"
	if o.ExpectedDeliveryDate != nil {
		expected = o.ExpectedDeliveryDate.Format("02/01/2006")
	}
	cell := func(s string) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Size: 8, Align: align.Center, Top: 1.5}))
	}
	return row.New(8).Add(
		cell(o.OrderDate.Format("02/01/2006")),
		cell(expected),
		cell(nonEmpty(statusLabels[o.Status], o.Status)),
		cell(nonEmpty(o.UserName, "-")),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 3,
		})),
		col.New(3).Add(text.New("$"+FormatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 3,
		})),
	)
}

// footerRow QR con el número de orden para conciliar la recepción escaneando el documento.
func footerRow(o *entity.OrderView) core.Row {
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(o.OrderNumber, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Presente este documento al entregar la mercancía.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("Toda entrega debe citar el número "+o.OrderNumber+".", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// FormatMoney formatea con puntos de miles y coma decimal (2 decimales).
// Ej: 1234567.5 → "1.234.567,50".
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}
