package sri

import (
	"encoding/xml"

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// buildNotaDebito escribe el documento según NotaDebito_V1.0.0.
func (s *XMLBuilderService) buildNotaDebito(enc *xml.Encoder, c *entity.Comprobante, claveAcceso string) error {
	nd := c.NotaDebito
	root := comprobanteRoot("notaDebito", VersionNotaDebito)
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	writeInfoTributaria(enc, &c.Emisor, claveAcceso)

	startEl(enc, "infoNotaDebito")
	writeEl(enc, "fechaEmision", c.FechaEmision.Format(FechaXML))
	if c.Emisor.DirEstablecimiento != "" {
		writeEl(enc, "dirEstablecimiento", c.Emisor.DirEstablecimiento)
	}
	if c.Emisor.ContribuyenteEspecial != "" {
		writeEl(enc, "contribuyenteEspecial", c.Emisor.ContribuyenteEspecial)
	}
	writeEl(enc, "obligadoContabilidad", siNo(c.Emisor.ObligadoContabilidad))
	writeEl(enc, "tipoIdentificacionComprador", nd.Comprador.TipoIdentificacion)
	writeEl(enc, "razonSocialComprador", nd.Comprador.RazonSocial)
	writeEl(enc, "identificacionComprador", nd.Comprador.Identificacion)
	codDocMod := nd.DocModificado.CodDoc
	if codDocMod == "" {
		codDocMod = pkgsri.DocFactura
	}
	writeEl(enc, "codDocModificado", codDocMod)
	writeEl(enc, "numDocModificado", nd.DocModificado.Numero)
	writeEl(enc, "fechaEmisionDocSustento", nd.DocModificado.FechaEmision.Format(FechaXML))
	writeEl(enc, "totalSinImpuestos", formatMonto(nd.TotalSinImpuestos))

	// Los impuestos se acumulan sobre todos los motivos.
	listas := make([][]entity.Impuesto, 0, len(nd.Motivos))
	for _, m := range nd.Motivos {
		listas = append(listas, m.Impuestos)
	}
	grupos := agruparImpuestos(listas...)
	writeTotalConImpuestos(enc, grupos)

	// valorTotal = total sin impuestos + suma de valores de impuesto
	valorTotal := nd.TotalSinImpuestos
	for _, g := range grupos {
		valorTotal = valorTotal.Add(g.Valor)
	}
	writeEl(enc, "valorTotal", formatMonto(valorTotal))
	endEl(enc, "infoNotaDebito")

	startEl(enc, "motivos")
	for _, m := range nd.Motivos {
		startEl(enc, "motivo")
		writeEl(enc, "razon", m.Razon)
		writeEl(enc, "valor", formatMonto(m.Valor))
		endEl(enc, "motivo")
	}
	endEl(enc, "motivos")

	writeInfoAdicional(enc, c.InfoAdicional)
	return enc.EncodeToken(root.End())
}
