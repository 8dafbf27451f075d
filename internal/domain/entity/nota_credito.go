package entity

import "github.com/shopspring/decimal"

// NotaCredito es el cuerpo de una nota de crédito (esquema NotaCredito_V1.1.0):
// ajusta a la baja una factura previamente emitida.
type NotaCredito struct {
	Comprador     Comprador
	DocModificado DocumentoModificado

	Motivo string // ej: "Devolución de mercadería"

	TotalSinImpuestos decimal.Decimal
	TotalDescuento    decimal.Decimal

	Detalles []Detalle
}
