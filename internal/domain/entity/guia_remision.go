package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transportista identifica al responsable del traslado.
type Transportista struct {
	RazonSocial        string
	TipoIdentificacion string // "04" RUC, "05" Cédula, etc.
	Identificacion     string
	Placa              string // opcional
}

// DocumentoSustento referencia el comprobante que sustenta el traslado
// (factura de venta, declaración aduanera, etc.).
type DocumentoSustento struct {
	CodDoc       string // "01" = Factura si vacío
	Numero       string
	Autorizacion string // "0" si no aplica
}

// ProductoGuia es un producto trasladado a un destinatario.
type ProductoGuia struct {
	CodigoInterno       string
	CodigoAdicional     string // opcional
	Descripcion         string
	Cantidad            decimal.Decimal
	DetallesAdicionales []CampoAdicional
}

// Destinatario es un punto de entrega con su propia lista de productos.
type Destinatario struct {
	Identificacion  string
	RazonSocial     string
	Direccion       string
	MotivoTraslado  string // si vacío hereda el de la guía
	DocAduanero     string // opcional (importación/exportación)
	CodEstabDestino string // opcional
	Ruta            string // opcional
	DocSustento     *DocumentoSustento
	Productos       []ProductoGuia
}

// GuiaRemision es el cuerpo de una guía de remisión (esquema GuiaRemision
// v1.1.0): autoriza mercadería en tránsito.
type GuiaRemision struct {
	DirPartida    string
	Transportista Transportista

	FechaIniTransporte time.Time
	FechaFinTransporte time.Time

	MotivoTraslado string // código 01-10 (pkg/sri)
	Ruta           string // opcional
	DocSustento    *DocumentoSustento

	Destinatarios []Destinatario
}
