package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Emisor es la cabecera tributaria de todo comprobante electrónico: identidad
// del emisor y numeración del documento. Inmutable una vez generada la clave
// de acceso.
type Emisor struct {
	Ambiente              string // "1" = Pruebas, "2" = Producción (pkg/sri)
	TipoEmision           string // "1" = Normal; vacío equivale a normal
	RazonSocial           string
	NombreComercial       string // opcional
	RUC                   string // hasta 13 dígitos; se rellena a 13 con ceros a la izquierda
	DirMatriz             string
	DirEstablecimiento    string // opcional
	ContribuyenteEspecial string // opcional
	ObligadoContabilidad  bool
	Establecimiento       string // hasta 3 dígitos; se rellena a 3
	PuntoEmision          string // hasta 3 dígitos; se rellena a 3
	Secuencial            int64  // 1 .. 999999999, único por estab+ptoEmi+codDoc
	CodDoc                string // "04" NC, "05" ND, "06" GR (pkg/sri)
}

// Comprador identifica al adquiriente del comprobante.
type Comprador struct {
	TipoIdentificacion string // "04" RUC, "05" Cédula, "06" Pasaporte, "07" Consumidor Final
	RazonSocial        string
	Identificacion     string
	Direccion          string // opcional
	Email              string // opcional
	Telefono           string // opcional
}

// DocumentoModificado referencia la factura original que una nota de crédito
// o débito ajusta.
type DocumentoModificado struct {
	CodDoc       string    // "01" = Factura
	Numero       string    // 001-001-000000001
	FechaEmision time.Time // fecha de emisión del documento sustento
}

// Impuesto es una entrada de impuesto por línea (o por motivo en notas de débito).
type Impuesto struct {
	Codigo           string          // "2" IVA, "3" ICE, "5" IRBPNR
	CodigoPorcentaje string          // código de tarifa (pkg/sri)
	Tarifa           decimal.Decimal // porcentaje (ej: 12)
	BaseImponible    decimal.Decimal
	Valor            decimal.Decimal
}

// CampoAdicional es un par nombre/valor libre para el bloque infoAdicional.
type CampoAdicional struct {
	Nombre string
	Valor  string
}

// Detalle es una línea de producto/servicio de una nota de crédito.
type Detalle struct {
	CodigoPrincipal        string // opcional
	CodigoAuxiliar         string // opcional
	Descripcion            string
	Cantidad               decimal.Decimal
	PrecioUnitario         decimal.Decimal
	Descuento              decimal.Decimal
	PrecioTotalSinImpuesto decimal.Decimal
	DetallesAdicionales    []CampoAdicional
	Impuestos              []Impuesto
}

// Comprobante es la unión etiquetada sobre los tipos de documento soportados:
// exactamente uno de los cuerpos debe estar presente, y su variante debe
// corresponder con Emisor.CodDoc.
type Comprobante struct {
	Emisor       Emisor
	FechaEmision time.Time

	NotaCredito  *NotaCredito
	NotaDebito   *NotaDebito
	GuiaRemision *GuiaRemision

	InfoAdicional []CampoAdicional
}

// Variantes devueltas por Tipo.
const (
	TipoNotaCredito  = "04"
	TipoNotaDebito   = "05"
	TipoGuiaRemision = "06"
)

// Tipo devuelve el código de documento de la variante presente, validando que
// haya exactamente una y que coincida con Emisor.CodDoc cuando éste no es vacío.
func (c *Comprobante) Tipo() (string, error) {
	var tipo string
	var n int
	if c.NotaCredito != nil {
		tipo = TipoNotaCredito
		n++
	}
	if c.NotaDebito != nil {
		tipo = TipoNotaDebito
		n++
	}
	if c.GuiaRemision != nil {
		tipo = TipoGuiaRemision
		n++
	}
	if n != 1 {
		return "", fmt.Errorf("comprobante debe tener exactamente una variante, tiene %d", n)
	}
	if c.Emisor.CodDoc != "" && c.Emisor.CodDoc != tipo {
		return "", fmt.Errorf("codDoc %q no corresponde a la variante %q", c.Emisor.CodDoc, tipo)
	}
	return tipo, nil
}
