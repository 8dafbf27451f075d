package emision_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquishpe/sri-comprobantes/internal/application/emision"
	"github.com/dquishpe/sri-comprobantes/internal/domain"
	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	domsri "github.com/dquishpe/sri-comprobantes/internal/domain/sri"
	"github.com/dquishpe/sri-comprobantes/pkg/logger"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// stubs

type xmlBuilderStub struct {
	claves []string
	err    error
}

func (s *xmlBuilderStub) Build(_ *entity.Comprobante, clave string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.claves = append(s.claves, clave)
	return []byte("<notaCredito id=\"comprobante\"/>"), nil
}

type rideStub struct {
	ruta string
	err  error
}

func (s *rideStub) Generate(*entity.Comprobante, string) ([]byte, error) {
	return []byte("%PDF-1.7"), s.err
}

func (s *rideStub) Guardar(*entity.Comprobante, string) (string, error) {
	return s.ruta, s.err
}

func comprobantePrueba() *entity.Comprobante {
	return &entity.Comprobante{
		Emisor: entity.Emisor{
			Ambiente:        pkgsri.AmbientePruebas,
			RazonSocial:     "IMPORTADORA ANDINA S.A.",
			RUC:             "1790000000001",
			DirMatriz:       "Av. Amazonas N24-03 y Colón, Quito",
			Establecimiento: "1",
			PuntoEmision:    "1",
			Secuencial:      15,
			CodDoc:          pkgsri.DocNotaCredito,
		},
		FechaEmision: time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC),
		NotaCredito: &entity.NotaCredito{
			Comprador: entity.Comprador{
				TipoIdentificacion: pkgsri.IdentRUC,
				RazonSocial:        "DISTRIBUIDORA DEL SUR CIA. LTDA.",
				Identificacion:     "0990000000001",
			},
			DocModificado: entity.DocumentoModificado{
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

func nuevoServicio(builder *xmlBuilderStub, ride *rideStub) *emision.Servicio {
	return emision.NewServicio(domsri.NewClaveAccesoService(), builder, ride, logger.Nop())
}

func TestEmitir_CicloCompleto(t *testing.T) {
	builder := &xmlBuilderStub{}
	svc := nuevoServicio(builder, &rideStub{ruta: "temp/ride/RIDE_NC_x.pdf"})

	res, err := svc.Emitir(context.Background(), comprobantePrueba())
	require.NoError(t, err)

	assert.NotEmpty(t, res.EmisionID)
	assert.Len(t, res.ClaveAcceso, 49)
	assert.Equal(t, "001-001-000000015", res.NumeroComprobante)
	assert.NotEmpty(t, res.XML)
	assert.Nil(t, res.XMLFirmado)
	assert.Equal(t, "temp/ride/RIDE_NC_x.pdf", res.RutaRide)

	// El builder recibe la misma clave que se reporta en el resultado.
	require.Len(t, builder.claves, 1)
	assert.Equal(t, res.ClaveAcceso, builder.claves[0])
}

func TestEmitir_ClavesDistintasPorEmision(t *testing.T) {
	builder := &xmlBuilderStub{}
	svc := nuevoServicio(builder, &rideStub{ruta: "x.pdf"})

	a, err := svc.Emitir(context.Background(), comprobantePrueba())
	require.NoError(t, err)
	b, err := svc.Emitir(context.Background(), comprobantePrueba())
	require.NoError(t, err)

	assert.NotEqual(t, a.EmisionID, b.EmisionID)
	assert.NotEqual(t, a.ClaveAcceso, b.ClaveAcceso)
}

func TestEmitir_ComprobanteInvalido(t *testing.T) {
	svc := nuevoServicio(&xmlBuilderStub{}, &rideStub{})

	c := comprobantePrueba()
	c.NotaCredito.Detalles = nil
	_, err := svc.Emitir(context.Background(), c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComprobanteInvalido))
}

func TestEmitir_PropagaErrores(t *testing.T) {
	errBuilder := errors.New("xml roto")
	_, err := nuevoServicio(&xmlBuilderStub{err: errBuilder}, &rideStub{}).
		Emitir(context.Background(), comprobantePrueba())
	assert.ErrorIs(t, err, errBuilder)

	errRide := errors.New("disco lleno")
	_, err = nuevoServicio(&xmlBuilderStub{}, &rideStub{err: errRide}).
		Emitir(context.Background(), comprobantePrueba())
	assert.ErrorIs(t, err, errRide)
}

func TestEmitir_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := nuevoServicio(&xmlBuilderStub{}, &rideStub{})
	_, err := svc.Emitir(ctx, comprobantePrueba())
	assert.ErrorIs(t, err, context.Canceled)
}
