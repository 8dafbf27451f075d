package sri_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquishpe/sri-comprobantes/internal/domain"
	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	"github.com/dquishpe/sri-comprobantes/internal/domain/sri"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

func compradorPrueba() entity.Comprador {
	return entity.Comprador{
		TipoIdentificacion: pkgsri.IdentRUC,
		RazonSocial:        "DISTRIBUIDORA DEL SUR CIA. LTDA.",
		Identificacion:     "0990000000001",
	}
}

func notaCreditoPrueba() *entity.Comprobante {
	emisor := *nuevoEmisorPrueba()
	return &entity.Comprobante{
		Emisor:       emisor,
		FechaEmision: time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC),
		NotaCredito: &entity.NotaCredito{
			Comprador: compradorPrueba(),
			DocModificado: entity.DocumentoModificado{
				CodDoc:       pkgsri.DocFactura,
				Numero:       "001-001-000000123",
				FechaEmision: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
			},
			Motivo:            "Devolución de mercadería",
			TotalSinImpuestos: decimal.NewFromFloat(20),
			Detalles: []entity.Detalle{{
				Descripcion:            "Cemento gris 50kg",
				Cantidad:               decimal.NewFromInt(2),
				PrecioUnitario:         decimal.NewFromInt(10),
				PrecioTotalSinImpuesto: decimal.NewFromInt(20),
			}},
		},
	}
}

func TestValidarComprobante_NotaCreditoValida(t *testing.T) {
	assert.NoError(t, sri.ValidarComprobante(notaCreditoPrueba()))
}

func TestValidarComprobante_Nulo(t *testing.T) {
	err := sri.ValidarComprobante(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComprobanteInvalido))
}

func TestValidarComprobante_VarianteAusente(t *testing.T) {
	c := notaCreditoPrueba()
	c.NotaCredito = nil
	err := sri.ValidarComprobante(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComprobanteInvalido))
}

func TestValidarComprobante_DosVariantes(t *testing.T) {
	c := notaCreditoPrueba()
	c.NotaDebito = &entity.NotaDebito{}
	err := sri.ValidarComprobante(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComprobanteInvalido))
}

func TestValidarComprobante_CodDocDiscordante(t *testing.T) {
	c := notaCreditoPrueba()
	c.Emisor.CodDoc = pkgsri.DocNotaDebito
	err := sri.ValidarComprobante(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComprobanteInvalido))
}

func TestValidarComprobante_NotaCreditoIncompleta(t *testing.T) {
	tests := []struct {
		name     string
		mutacion func(c *entity.Comprobante)
	}{
		{"sin razón social del emisor", func(c *entity.Comprobante) { c.Emisor.RazonSocial = "" }},
		{"sin dirección matriz", func(c *entity.Comprobante) { c.Emisor.DirMatriz = "" }},
		{"sin fecha de emisión", func(c *entity.Comprobante) { c.FechaEmision = time.Time{} }},
		{"sin comprador", func(c *entity.Comprobante) { c.NotaCredito.Comprador = entity.Comprador{} }},
		{"sin documento modificado", func(c *entity.Comprobante) { c.NotaCredito.DocModificado.Numero = "" }},
		{"sin fecha de sustento", func(c *entity.Comprobante) {
			c.NotaCredito.DocModificado.FechaEmision = time.Time{}
		}},
		{"sin detalles", func(c *entity.Comprobante) { c.NotaCredito.Detalles = nil }},
		{"detalle sin descripción", func(c *entity.Comprobante) {
			c.NotaCredito.Detalles[0].Descripcion = ""
		}},
		{"cantidad negativa", func(c *entity.Comprobante) {
			c.NotaCredito.Detalles[0].Cantidad = decimal.NewFromInt(-1)
		}},
		{"tipo de identificación desconocido", func(c *entity.Comprobante) {
			c.NotaCredito.Comprador.TipoIdentificacion = "99"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := notaCreditoPrueba()
			tt.mutacion(c)
			err := sri.ValidarComprobante(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrComprobanteInvalido))
		})
	}
}

func TestValidarComprobante_NotaDebito(t *testing.T) {
	emisor := *nuevoEmisorPrueba()
	emisor.CodDoc = pkgsri.DocNotaDebito
	c := &entity.Comprobante{
		Emisor:       emisor,
		FechaEmision: time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC),
		NotaDebito: &entity.NotaDebito{
			Comprador: compradorPrueba(),
			DocModificado: entity.DocumentoModificado{
				Numero:       "001-001-000000123",
				FechaEmision: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
			},
			TotalSinImpuestos: decimal.NewFromFloat(5),
			Motivos: []entity.MotivoDebito{{
				Razon: "Interés por mora",
				Valor: decimal.NewFromFloat(5),
			}},
		},
	}
	assert.NoError(t, sri.ValidarComprobante(c))

	c.NotaDebito.Motivos = nil
	err := sri.ValidarComprobante(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComprobanteInvalido))
}

func TestValidarComprobante_GuiaRemision(t *testing.T) {
	emisor := *nuevoEmisorPrueba()
	emisor.CodDoc = pkgsri.DocGuiaRemision
	guia := func() *entity.Comprobante {
		return &entity.Comprobante{
			Emisor:       emisor,
			FechaEmision: time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC),
			GuiaRemision: &entity.GuiaRemision{
				DirPartida: "Av. Maldonado S15-30, Quito",
				Transportista: entity.Transportista{
					RazonSocial:        "TRANSPORTES RÁPIDOS S.A.",
					TipoIdentificacion: pkgsri.IdentRUC,
					Identificacion:     "1790000000001",
					Placa:              "PBA1234",
				},
				FechaIniTransporte: time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC),
				FechaFinTransporte: time.Date(2025, time.November, 19, 0, 0, 0, 0, time.UTC),
				MotivoTraslado:     "01",
				Destinatarios: []entity.Destinatario{{
					Identificacion: "0990000000001",
					RazonSocial:    "DISTRIBUIDORA DEL SUR CIA. LTDA.",
					Direccion:      "Av. 9 de Octubre 100, Guayaquil",
					Productos: []entity.ProductoGuia{{
						Descripcion: "Cemento gris 50kg",
						Cantidad:    decimal.NewFromInt(40),
					}},
				}},
			},
		}
	}

	assert.NoError(t, sri.ValidarComprobante(guia()))

	tests := []struct {
		name     string
		mutacion func(g *entity.GuiaRemision)
	}{
		{"sin dirección de partida", func(g *entity.GuiaRemision) { g.DirPartida = "" }},
		{"sin motivo de traslado", func(g *entity.GuiaRemision) { g.MotivoTraslado = "" }},
		{"sin transportista", func(g *entity.GuiaRemision) { g.Transportista = entity.Transportista{} }},
		{"sin fechas de transporte", func(g *entity.GuiaRemision) {
			g.FechaIniTransporte, g.FechaFinTransporte = time.Time{}, time.Time{}
		}},
		{"sin destinatarios", func(g *entity.GuiaRemision) { g.Destinatarios = nil }},
		{"destinatario sin productos", func(g *entity.GuiaRemision) {
			g.Destinatarios[0].Productos = nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := guia()
			tt.mutacion(c.GuiaRemision)
			err := sri.ValidarComprobante(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrComprobanteInvalido))
		})
	}
}
