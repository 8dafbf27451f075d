package sri

import (
	"encoding/xml"

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// buildNotaCredito escribe el documento según NotaCredito_V1.1.0.
func (s *XMLBuilderService) buildNotaCredito(enc *xml.Encoder, c *entity.Comprobante, claveAcceso string) error {
	nc := c.NotaCredito
	root := comprobanteRoot("notaCredito", VersionNotaCredito)
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	writeInfoTributaria(enc, &c.Emisor, claveAcceso)

	// ---- infoNotaCredito: el orden de los elementos lo fija el esquema
	startEl(enc, "infoNotaCredito")
	writeEl(enc, "fechaEmision", c.FechaEmision.Format(FechaXML))
	if c.Emisor.DirEstablecimiento != "" {
		writeEl(enc, "dirEstablecimiento", c.Emisor.DirEstablecimiento)
	}
	if c.Emisor.ContribuyenteEspecial != "" {
		writeEl(enc, "contribuyenteEspecial", c.Emisor.ContribuyenteEspecial)
	}
	writeEl(enc, "obligadoContabilidad", siNo(c.Emisor.ObligadoContabilidad))
	writeEl(enc, "tipoIdentificacionComprador", nc.Comprador.TipoIdentificacion)
	writeEl(enc, "razonSocialComprador", nc.Comprador.RazonSocial)
	writeEl(enc, "identificacionComprador", nc.Comprador.Identificacion)
	codDocMod := nc.DocModificado.CodDoc
	if codDocMod == "" {
		codDocMod = pkgsri.DocFactura
	}
	writeEl(enc, "codDocModificado", codDocMod)
	writeEl(enc, "numDocModificado", nc.DocModificado.Numero)
	writeEl(enc, "fechaEmisionDocSustento", nc.DocModificado.FechaEmision.Format(FechaXML))
	writeEl(enc, "totalSinImpuestos", formatMonto(nc.TotalSinImpuestos))
	// valorModificacion = total sin impuestos + descuento aplicado
	writeEl(enc, "valorModificacion", formatMonto(nc.TotalSinImpuestos.Add(nc.TotalDescuento)))
	writeEl(enc, "moneda", pkgsri.Moneda)

	listas := make([][]entity.Impuesto, 0, len(nc.Detalles))
	for _, d := range nc.Detalles {
		listas = append(listas, d.Impuestos)
	}
	writeTotalConImpuestos(enc, agruparImpuestos(listas...))

	writeEl(enc, "motivo", nc.Motivo)
	endEl(enc, "infoNotaCredito")

	// ---- detalles
	startEl(enc, "detalles")
	for _, d := range nc.Detalles {
		startEl(enc, "detalle")
		if d.CodigoPrincipal != "" {
			writeEl(enc, "codigoPrincipal", d.CodigoPrincipal)
		}
		if d.CodigoAuxiliar != "" {
			writeEl(enc, "codigoAuxiliar", d.CodigoAuxiliar)
		}
		writeEl(enc, "descripcion", d.Descripcion)
		writeEl(enc, "cantidad", d.Cantidad.String())
		writeEl(enc, "precioUnitario", formatPrecioUnitario(d.PrecioUnitario))
		writeEl(enc, "descuento", formatMonto(d.Descuento))
		writeEl(enc, "precioTotalSinImpuesto", formatMonto(d.PrecioTotalSinImpuesto))
		writeDetallesAdicionales(enc, d.DetallesAdicionales)
		startEl(enc, "impuestos")
		for _, imp := range d.Impuestos {
			startEl(enc, "impuesto")
			writeEl(enc, "codigo", imp.Codigo)
			writeEl(enc, "codigoPorcentaje", imp.CodigoPorcentaje)
			writeEl(enc, "tarifa", imp.Tarifa.String())
			writeEl(enc, "baseImponible", formatMonto(imp.BaseImponible))
			writeEl(enc, "valor", formatMonto(imp.Valor))
			endEl(enc, "impuesto")
		}
		endEl(enc, "impuestos")
		endEl(enc, "detalle")
	}
	endEl(enc, "detalles")

	writeInfoAdicional(enc, c.InfoAdicional)
	return enc.EncodeToken(root.End())
}
