// Package sri construye los XML de comprobantes electrónicos según los
// esquemas del SRI (Ecuador) y empaqueta el contexto de emisión.
package sri

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
)

// FechaXML es el formato de fecha de los esquemas del SRI.
const FechaXML = "02/01/2006"

func writeEl(enc *xml.Encoder, local, value string) {
	_ = enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: local}})
	_ = enc.EncodeToken(xml.CharData(value))
	_ = enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: local}})
}

func writeElAttr(enc *xml.Encoder, local, value, attrLocal, attrValue string) {
	_ = enc.EncodeToken(xml.StartElement{
		Name: xml.Name{Local: local},
		Attr: []xml.Attr{{Name: xml.Name{Local: attrLocal}, Value: attrValue}},
	})
	_ = enc.EncodeToken(xml.CharData(value))
	_ = enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: local}})
}

func startEl(enc *xml.Encoder, local string) {
	_ = enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: local}})
}

func endEl(enc *xml.Encoder, local string) {
	_ = enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: local}})
}

// formatMonto redondea montos monetarios a dos decimales.
func formatMonto(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatPrecioUnitario usa seis decimales, como exige el esquema para
// precioUnitario.
func formatPrecioUnitario(d decimal.Decimal) string {
	return d.StringFixed(6)
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func siNo(b bool) string {
	if b {
		return "SI"
	}
	return "NO"
}

// writeInfoTributaria escribe la cabecera común a todos los comprobantes.
func writeInfoTributaria(enc *xml.Encoder, emisor *entity.Emisor, claveAcceso string) {
	startEl(enc, "infoTributaria")
	ambiente := emisor.Ambiente
	if ambiente == "" {
		ambiente = "1"
	}
	tipoEmision := emisor.TipoEmision
	if tipoEmision == "" {
		tipoEmision = "1"
	}
	writeEl(enc, "ambiente", ambiente)
	writeEl(enc, "tipoEmision", tipoEmision)
	writeEl(enc, "razonSocial", emisor.RazonSocial)
	if emisor.NombreComercial != "" {
		writeEl(enc, "nombreComercial", emisor.NombreComercial)
	}
	writeEl(enc, "ruc", zeroPad(emisor.RUC, 13))
	writeEl(enc, "claveAcceso", claveAcceso)
	writeEl(enc, "codDoc", emisor.CodDoc)
	writeEl(enc, "estab", zeroPad(emisor.Establecimiento, 3))
	writeEl(enc, "ptoEmi", zeroPad(emisor.PuntoEmision, 3))
	writeEl(enc, "secuencial", zeroPad(strconv.FormatInt(emisor.Secuencial, 10), 9))
	writeEl(enc, "dirMatriz", emisor.DirMatriz)
	endEl(enc, "infoTributaria")
}

// impuestoAgrupado acumula base y valor por (codigo, codigoPorcentaje).
type impuestoAgrupado struct {
	Codigo           string
	CodigoPorcentaje string
	BaseImponible    decimal.Decimal
	Valor            decimal.Decimal
}

// agruparImpuestos suma impuestos por (codigo, codigoPorcentaje) conservando
// el orden de primera aparición, para que el XML resultante sea determinista.
func agruparImpuestos(listas ...[]entity.Impuesto) []*impuestoAgrupado {
	indice := make(map[string]*impuestoAgrupado)
	var orden []*impuestoAgrupado
	for _, impuestos := range listas {
		for _, imp := range impuestos {
			key := imp.Codigo + "_" + imp.CodigoPorcentaje
			grupo, ok := indice[key]
			if !ok {
				grupo = &impuestoAgrupado{
					Codigo:           imp.Codigo,
					CodigoPorcentaje: imp.CodigoPorcentaje,
				}
				indice[key] = grupo
				orden = append(orden, grupo)
			}
			grupo.BaseImponible = grupo.BaseImponible.Add(imp.BaseImponible)
			grupo.Valor = grupo.Valor.Add(imp.Valor)
		}
	}
	return orden
}

// writeTotalConImpuestos escribe el bloque totalConImpuestos a partir de los
// grupos ya acumulados.
func writeTotalConImpuestos(enc *xml.Encoder, grupos []*impuestoAgrupado) {
	startEl(enc, "totalConImpuestos")
	for _, g := range grupos {
		startEl(enc, "totalImpuesto")
		writeEl(enc, "codigo", g.Codigo)
		writeEl(enc, "codigoPorcentaje", g.CodigoPorcentaje)
		writeEl(enc, "baseImponible", formatMonto(g.BaseImponible))
		writeEl(enc, "valor", formatMonto(g.Valor))
		endEl(enc, "totalImpuesto")
	}
	endEl(enc, "totalConImpuestos")
}

func writeDetallesAdicionales(enc *xml.Encoder, campos []entity.CampoAdicional) {
	if len(campos) == 0 {
		return
	}
	startEl(enc, "detallesAdicionales")
	for _, campo := range campos {
		writeElAttr(enc, "detAdicional", campo.Valor, "nombre", campo.Nombre)
	}
	endEl(enc, "detallesAdicionales")
}

func writeInfoAdicional(enc *xml.Encoder, campos []entity.CampoAdicional) {
	if len(campos) == 0 {
		return
	}
	startEl(enc, "infoAdicional")
	for _, campo := range campos {
		writeElAttr(enc, "campoAdicional", campo.Valor, "nombre", campo.Nombre)
	}
	endEl(enc, "infoAdicional")
}
