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

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	infrasri "github.com/dquishpe/sri-comprobantes/internal/infrastructure/sri"
)

// buildRideNotaCredito arma el RIDE de una nota de crédito: cliente,
// comprobante modificado, tabla de detalles y totales.
func buildRideNotaCredito(m core.Maroto, c *entity.Comprobante, claveAcceso string) error {
	nc := c.NotaCredito
	fecha := c.FechaEmision.Format(infrasri.FechaXML)

	m.AddRows(headerRows(c, "NOTA DE CRÉDITO", claveAcceso, fecha)...)

	m.AddRows(seccionTitulo("CLIENTE"))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(nc.Comprador.RazonSocial, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		text.New(nc.Comprador.Identificacion, props.Text{Size: 8, Top: 6, Color: colorGray}),
	)))

	m.AddRows(seccionTitulo("COMPROBANTE QUE SE MODIFICA"))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(nc.DocModificado.Numero+" - Fecha: "+nc.DocModificado.FechaEmision.Format(infrasri.FechaXML),
			props.Text{Size: 9, Top: 1}),
		text.New("Motivo: "+nc.Motivo, props.Text{Size: 8, Top: 6, Color: colorGray}),
	)))

	m.AddRows(seccionTitulo("DETALLE"))
	m.AddRows(detalleHeaderRow())
	for _, d := range nc.Detalles {
		m.AddRows(detalleRow(&d))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesNotaCredito(nc))

	m.AddRows(footerRows(c, claveAcceso, claveAcceso)...)
	return nil
}

func detalleHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Descripción", 6, align.Left),
		h("Cant.", 2, align.Right),
		h("P. Unitario", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func detalleRow(d *entity.Detalle) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(d.Descripcion, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(d.Cantidad.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New("$"+d.PrecioUnitario.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New("$"+d.PrecioTotalSinImpuesto.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

// totalesNotaCredito: subtotal, descuento y valor total de la modificación.
func totalesNotaCredito(nc *entity.NotaCredito) core.Row {
	valorTotal := nc.TotalSinImpuestos.Add(nc.TotalDescuento)
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
			label("DESCUENTO:", 6),
			label("VALOR TOTAL:", 11),
		),
		col.New(3).Add(
			value("$"+nc.TotalSinImpuestos.StringFixed(2), 1),
			value("$"+nc.TotalDescuento.StringFixed(2), 6),
			value("$"+valorTotal.StringFixed(2), 11),
		),
	)
}
