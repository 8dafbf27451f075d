package pdf

import (
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	infrasri "github.com/dquishpe/sri-comprobantes/internal/infrastructure/sri"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// buildRideGuiaRemision arma el RIDE de una guía de remisión: información del
// transporte, transportista y productos por destinatario.
func buildRideGuiaRemision(m core.Maroto, c *entity.Comprobante, claveAcceso string) error {
	g := c.GuiaRemision
	fecha := c.FechaEmision.Format(infrasri.FechaXML)

	m.AddRows(headerRows(c, "GUÍA DE REMISIÓN", claveAcceso, fecha)...)

	m.AddRows(seccionTitulo("INFORMACIÓN DEL TRANSPORTE"))
	motivo := g.MotivoTraslado + " - " + pkgsri.DescripcionMotivoTraslado(g.MotivoTraslado)
	m.AddRows(row.New(22).Add(col.New(12).Add(
		text.New("Dirección de Partida: "+g.DirPartida, props.Text{Size: 8, Top: 1}),
		text.New("Fecha Inicio Transporte: "+g.FechaIniTransporte.Format(infrasri.FechaXML), props.Text{Size: 8, Top: 6}),
		text.New("Fecha Fin Transporte: "+g.FechaFinTransporte.Format(infrasri.FechaXML), props.Text{Size: 8, Top: 11}),
		text.New("Motivo de Traslado: "+motivo, props.Text{Size: 8, Top: 16}),
	)))

	m.AddRows(seccionTitulo("DATOS DEL TRANSPORTISTA"))
	transportista := []core.Component{
		text.New("Razón Social: "+g.Transportista.RazonSocial, props.Text{Size: 8, Top: 1}),
		text.New("Identificación: "+g.Transportista.Identificacion, props.Text{Size: 8, Top: 6}),
	}
	alto := 12.0
	if g.Transportista.Placa != "" {
		transportista = append(transportista,
			text.New("Placa del Vehículo: "+g.Transportista.Placa, props.Text{Size: 8, Top: 11}))
		alto = 17
	}
	m.AddRows(row.New(alto).Add(col.New(12).Add(transportista...)))

	m.AddRows(seccionTitulo("DESTINATARIOS Y PRODUCTOS"))
	for i, dest := range g.Destinatarios {
		m.AddRows(row.New(11).Add(col.New(12).Add(
			text.New("Destinatario "+strconv.Itoa(i+1)+": "+dest.RazonSocial,
				props.Text{Style: fontstyle.Bold, Size: 9, Color: colorAccent, Top: 1}),
			text.New(dest.Identificacion+" - "+dest.Direccion, props.Text{Size: 8, Top: 7, Color: colorGray}),
		)))
		m.AddRows(productosHeaderRow())
		for _, p := range dest.Productos {
			m.AddRows(productoRow(&p))
		}
	}

	// QR de guías: clave|fecha|ruc para los validadores móviles.
	qrPayload := strings.Join([]string{claveAcceso, fecha, c.Emisor.RUC}, "|")
	m.AddRows(footerRows(c, claveAcceso, qrPayload)...)
	return nil
}

func productosHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("CÓDIGO", 3, align.Left),
		h("DESCRIPCIÓN", 7, align.Left),
		h("CANTIDAD", 2, align.Right),
	)
}

func productoRow(p *entity.ProductoGuia) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(nonEmpty(p.CodigoInterno, "—"), props.Text{Size: 8, Top: 1})),
		col.New(7).Add(text.New(p.Descripcion, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(p.Cantidad.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}
