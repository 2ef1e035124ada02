// Package pdf genera el comprobante de compra de una orden de invitado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda               │  N° Orden + Fecha + Estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: email + dirección de envío                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Talla | P.Unit | Subtotal          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  FOOTER: QR con el número de orden para el seguimiento      │
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

	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

var _ ports.ReceiptRenderer = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ReceiptGenerator implementa ports.ReceiptRenderer con Maroto v2.
type ReceiptGenerator struct {
	storeName string
}

// NewReceiptGenerator construye el generador; storeName va en el encabezado.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{storeName: storeName}
}

// RenderReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) RenderReceipt(_ context.Context, order *entity.Order) ([]byte, error) {
	if order == nil || order.OrderNumber == "" {
		return nil, fmt.Errorf("pdf: orden sin número: %w", domain.ErrInvalidInput)
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante "+order.OrderNumber, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(storeName string, order *entity.Order) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Comprobante de compra", props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ORDEN", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1}),
			text.New(order.OrderNumber, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 12, Color: colorGray}),
			text.New("Estado: "+string(order.Status), props.Text{Size: 8, Align: align.Right, Top: 16, Color: colorGray}),
		),
	)
}

func customerRow(order *entity.Order) core.Row {
	a := order.ShippingAddress
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	street := a.Address1
	if a.Address2 != "" {
		street += ", " + a.Address2
	}
	city := strings.Join(nonEmptyParts(a.City, a.State, a.ZipCode, a.Country), ", ")
	return row.New(20).Add(
		col.New(12).Add(
			text.New("ENVIAR A", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(name, "—"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(nonEmpty(street, "—")+"   |   "+nonEmpty(city, "—"), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New("Email: "+nonEmpty(order.GuestEmail, "—"), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Talla", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func itemRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := fmt.Sprintf("Producto #%d", it.ProductID)
		if it.Product != nil && it.Product.Name != "" {
			name = it.Product.Name
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(nonEmpty(it.Size, "—"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(FormatMoney(it.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(FormatMoney(it.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 2})),
		col.New(3).Add(text.New(FormatMoney(order.TotalAmount), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 2, Color: colorPrimary,
		})),
	)
}

func footerRow(order *entity.Order) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(order.OrderNumber, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("Use el número de orden para consultar el estado del envío.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("Conserve este comprobante.", props.Text{Size: 8, Top: 12, Left: 3, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonEmptyParts(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatMoney "$1,234.50": dos decimales y separador de miles.
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + string(buf) + frac
}
