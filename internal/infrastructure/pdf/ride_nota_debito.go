package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	infrasri "github.com/dquishpe/sri-comprobantes/internal/infrastructure/sri"
)

// buildRideNotaDebito arma el RIDE de una nota de débito: cliente, comprobante
// modificado, lista de motivos y totales.
func buildRideNotaDebito(m core.Maroto, c *entity.Comprobante, claveAcceso string) error {
	nd := c.NotaDebito
	fecha := c.FechaEmision.Format(infrasri.FechaXML)

	m.AddRows(headerRows(c, "NOTA DE DÉBITO", claveAcceso, fecha)...)

	m.AddRows(seccionTitulo("CLIENTE"))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(nd.Comprador.RazonSocial, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		text.New(nd.Comprador.Identificacion, props.Text{Size: 8, Top: 6, Color: colorGray}),
	)))

	m.AddRows(seccionTitulo("COMPROBANTE QUE SE MODIFICA"))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(nd.DocModificado.Numero+" - Fecha: "+nd.DocModificado.FechaEmision.Format(infrasri.FechaXML),
			props.Text{Size: 9, Top: 1}),
	)))

	m.AddRows(seccionTitulo("MOTIVOS"))
	valorImpuestos := decimal.Zero
	for _, motivo := range nd.Motivos {
		m.AddRows(row.New(6).Add(
			col.New(9).Add(text.New("• "+motivo.Razon, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New("$"+motivo.Valor.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
		for _, imp := range motivo.Impuestos {
			valorImpuestos = valorImpuestos.Add(imp.Valor)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesNotaDebito(nd, valorImpuestos))

	m.AddRows(footerRows(c, claveAcceso, claveAcceso)...)
	return nil
}

func totalesNotaDebito(nd *entity.NotaDebito, valorImpuestos decimal.Decimal) core.Row {
	valorTotal := nd.TotalSinImpuestos.Add(valorImpuestos)
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			label("SUBTOTAL:", 1),
			label("IMPUESTOS:", 6),
			label("VALOR TOTAL:", 11),
		),
		col.New(3).Add(
			value("$"+nd.TotalSinImpuestos.StringFixed(2), 1),
			value("$"+valorImpuestos.StringFixed(2), 6),
			value("$"+valorTotal.StringFixed(2), 11),
		),
	)
}
