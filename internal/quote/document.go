package quote

import (
	"bytes"
	"html/template"
	"time"

	"github.com/promoshopcl/promoshop-backend/internal/lineitems"
	pkgerrors "github.com/promoshopcl/promoshop-backend/pkg/errors"
	"github.com/promoshopcl/promoshop-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// documentLine is one rendered row of the quotation table.
type documentLine struct {
	Name      string
	Color     string
	Size      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type documentData struct {
	Date    string
	Company lineitems.CompanyInfo
	Lines   []documentLine
	Total   string
}

var documentTmpl = template.Must(template.New("quotation").Funcs(template.FuncMap{
	"orNA": func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	},
}).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Cotización de Productos</title>
<style>
body { font-family: sans-serif; color: #111; margin: 2rem; }
h1 { font-size: 1.5rem; }
table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
th, td { border-bottom: 1px solid #ddd; padding: 0.5rem; text-align: left; }
tfoot td { font-weight: bold; border-bottom: none; }
.terms { margin-top: 2rem; font-size: 0.85rem; color: #555; }
</style>
</head>
<body>
<h1>Cotización de Productos</h1>
<p>Fecha: {{.Date}}</p>
<h2>Datos del Cliente</h2>
<p>
Razón Social: {{orNA .Company.Name}}<br>
RUT: {{orNA .Company.RUT}}<br>
Dirección: {{orNA .Company.Address}}<br>
Email: {{orNA .Company.Email}}<br>
Teléfono: {{orNA .Company.Phone}}
</p>
<table>
<thead>
<tr><th>Producto</th><th>Detalles</th><th>Cantidad</th><th>Precio Unit.</th><th>Total</th></tr>
</thead>
<tbody>
{{range .Lines}}<tr>
<td>{{.Name}}</td>
<td>{{if .Color}}Color: {{.Color}}{{end}}{{if and .Color .Size}} / {{end}}{{if .Size}}Talla: {{.Size}}{{end}}</td>
<td>{{.Quantity}}</td>
<td>{{.UnitPrice}}</td>
<td>{{.LineTotal}}</td>
</tr>
{{end}}</tbody>
<tfoot>
<tr><td colspan="4">Total</td><td>{{.Total}}</td></tr>
</tfoot>
</table>
<p class="terms">Esta cotización es válida por 30 días. Precios no incluyen IVA.</p>
</body>
</html>
`))

func renderDocument(items []lineitems.Item, company lineitems.CompanyInfo, total decimal.Decimal) ([]byte, error) {
	data := documentData{
		Date:    time.Now().Format("02-01-2006"),
		Company: company,
		Total:   money.FormatCLP(total),
		Lines:   make([]documentLine, 0, len(items)),
	}
	for _, item := range items {
		unit := item.UnitPrice().UnitPrice
		data.Lines = append(data.Lines, documentLine{
			Name:      item.Name,
			Color:     item.SelectedColor,
			Size:      item.SelectedSize,
			Quantity:  item.Quantity,
			UnitPrice: money.FormatCLP(unit),
			LineTotal: money.FormatCLP(unit.Mul(decimal.NewFromInt(int64(item.Quantity)))),
		})
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, data); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render quotation document")
	}
	return buf.Bytes(), nil
}
