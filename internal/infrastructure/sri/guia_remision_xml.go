package sri

import (
	"encoding/xml"

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// buildGuiaRemision escribe el documento según GuiaRemision v1.1.0.
func (s *XMLBuilderService) buildGuiaRemision(enc *xml.Encoder, c *entity.Comprobante, claveAcceso string) error {
	g := c.GuiaRemision
	root := comprobanteRoot("guiaRemision", VersionGuiaRemision)
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	writeInfoTributaria(enc, &c.Emisor, claveAcceso)

	startEl(enc, "infoGuiaRemision")
	dirEstab := c.Emisor.DirEstablecimiento
	if dirEstab == "" {
		dirEstab = c.Emisor.DirMatriz
	}
	writeEl(enc, "dirEstablecimiento", dirEstab)
	writeEl(enc, "dirPartida", g.DirPartida)
	writeEl(enc, "razonSocialTransportista", g.Transportista.RazonSocial)
	writeEl(enc, "tipoIdentificacionTransportista", g.Transportista.TipoIdentificacion)
	writeEl(enc, "rucTransportista", g.Transportista.Identificacion)
	if c.Emisor.ObligadoContabilidad {
		writeEl(enc, "obligadoContabilidad", "SI")
	}
	if c.Emisor.ContribuyenteEspecial != "" {
		writeEl(enc, "contribuyenteEspecial", c.Emisor.ContribuyenteEspecial)
	}
	writeEl(enc, "fechaIniTransporte", g.FechaIniTransporte.Format(FechaXML))
	writeEl(enc, "fechaFinTransporte", g.FechaFinTransporte.Format(FechaXML))
	if g.Transportista.Placa != "" {
		writeEl(enc, "placa", g.Transportista.Placa)
	}
	endEl(enc, "infoGuiaRemision")

	startEl(enc, "destinatarios")
	for _, dest := range g.Destinatarios {
		startEl(enc, "destinatario")
		writeEl(enc, "identificacionDestinatario", dest.Identificacion)
		writeEl(enc, "razonSocialDestinatario", dest.RazonSocial)
		writeEl(enc, "dirDestinatario", dest.Direccion)
		motivo := dest.MotivoTraslado
		if motivo == "" {
			motivo = g.MotivoTraslado
		}
		writeEl(enc, "motivoTraslado", motivo)
		if dest.DocAduanero != "" {
			writeEl(enc, "docAduaneroUnico", dest.DocAduanero)
		}
		if dest.CodEstabDestino != "" {
			writeEl(enc, "codEstabDestino", dest.CodEstabDestino)
		}
		ruta := dest.Ruta
		if ruta == "" {
			ruta = g.Ruta
		}
		if ruta != "" {
			writeEl(enc, "ruta", ruta)
		}
		docSustento := dest.DocSustento
		if docSustento == nil {
			docSustento = g.DocSustento
		}
		if docSustento != nil {
			codDoc := docSustento.CodDoc
			if codDoc == "" {
				codDoc = pkgsri.DocFactura
			}
			aut := docSustento.Autorizacion
			if aut == "" {
				aut = "0"
			}
			writeEl(enc, "codDocSustento", codDoc)
			writeEl(enc, "numDocSustento", docSustento.Numero)
			writeEl(enc, "numAutDocSustento", aut)
		}
		startEl(enc, "detalles")
		for _, p := range dest.Productos {
			startEl(enc, "detalle")
			codigoInterno := p.CodigoInterno
			if codigoInterno == "" {
				codigoInterno = truncar(p.Descripcion, 25)
			}
			writeEl(enc, "codigoInterno", codigoInterno)
			if p.CodigoAdicional != "" {
				writeEl(enc, "codigoAdicional", p.CodigoAdicional)
			}
			writeEl(enc, "descripcion", p.Descripcion)
			writeEl(enc, "cantidad", p.Cantidad.String())
			writeDetallesAdicionales(enc, p.DetallesAdicionales)
			endEl(enc, "detalle")
		}
		endEl(enc, "detalles")
		endEl(enc, "destinatario")
	}
	endEl(enc, "destinatarios")

	writeInfoAdicional(enc, c.InfoAdicional)
	return enc.EncodeToken(root.End())
}

// truncar corta por caracteres, no por bytes: las descripciones con tildes o
// eñes no deben partirse a mitad de una secuencia UTF-8.
func truncar(s string, max int) string {
	runas := []rune(s)
	if len(runas) <= max {
		return s
	}
	return string(runas[:max])
}
