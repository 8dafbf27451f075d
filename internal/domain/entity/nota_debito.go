package entity

import "github.com/shopspring/decimal"

// MotivoDebito es un motivo de ajuste con su valor; una nota de débito puede
// tener varios, cada uno con sus propias entradas de impuesto.
type MotivoDebito struct {
	Razon     string
	Valor     decimal.Decimal
	Impuestos []Impuesto
}

// NotaDebito es el cuerpo de una nota de débito (esquema NotaDebito_V1.0.0):
// ajusta al alza una factura previamente emitida.
type NotaDebito struct {
	Comprador     Comprador
	DocModificado DocumentoModificado

	TotalSinImpuestos decimal.Decimal

	Motivos []MotivoDebito
}
