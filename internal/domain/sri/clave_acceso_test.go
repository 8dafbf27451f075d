package sri_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquishpe/sri-comprobantes/internal/domain"
	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	"github.com/dquishpe/sri-comprobantes/internal/domain/sri"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

func nuevoEmisorPrueba() *entity.Emisor {
	return &entity.Emisor{
		Ambiente:        pkgsri.AmbientePruebas,
		TipoEmision:     pkgsri.EmisionNormal,
		RazonSocial:     "IMPORTADORA ANDINA S.A.",
		RUC:             "1790000000001",
		DirMatriz:       "Av. Amazonas N24-03 y Colón, Quito",
		Establecimiento: "1",
		PuntoEmision:    "1",
		Secuencial:      15,
		CodDoc:          pkgsri.DocNotaCredito,
	}
}

func TestClaveAcceso_Composicion(t *testing.T) {
	svc := sri.NewClaveAccesoService()
	emisor := nuevoEmisorPrueba()
	fecha := time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC)

	clave, err := svc.Generar(emisor, fecha)
	require.NoError(t, err)
	require.Len(t, clave, sri.LargoClave)

	// Segmentos fijos: fecha + codDoc + ruc + ambiente + serie + secuencial.
	const prefijo = "181120250417900000000011001001000000015"
	assert.Equal(t, prefijo, clave[:sri.SegmentoAleatorioInicio])

	// tipoEmisión normal en la posición 47.
	assert.Equal(t, pkgsri.EmisionNormal, string(clave[47]))

	for _, c := range clave {
		assert.True(t, c >= '0' && c <= '9', "la clave debe ser solo numérica")
	}

	// El dígito verificador debe ser consistente con los 48 primeros dígitos.
	dv, err := sri.CalcularDigitoVerificador(clave[:48])
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(dv), string(clave[48]))
}

func TestClaveAcceso_SoloVariaElSegmentoAleatorio(t *testing.T) {
	svc := sri.NewClaveAccesoService()
	emisor := nuevoEmisorPrueba()
	fecha := time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC)

	a, err := svc.Generar(emisor, fecha)
	require.NoError(t, err)
	b, err := svc.Generar(emisor, fecha)
	require.NoError(t, err)

	assert.Equal(t, a[:sri.SegmentoAleatorioInicio], b[:sri.SegmentoAleatorioInicio])
	assert.Equal(t, string(a[47]), string(b[47]))
	// El código numérico de 8 dígitos se sortea en cada llamada; con 10^8
	// combinaciones una colisión en dos tiradas es despreciable.
	assert.NotEqual(t, a[sri.SegmentoAleatorioInicio:sri.SegmentoAleatorioFin],
		b[sri.SegmentoAleatorioInicio:sri.SegmentoAleatorioFin])
}

func TestClaveAcceso_RellenoDeRUC(t *testing.T) {
	svc := sri.NewClaveAccesoService()
	emisor := nuevoEmisorPrueba()
	emisor.RUC = "123456789"

	clave, err := svc.Generar(emisor, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "0000123456789", clave[10:23])
}

func TestClaveAcceso_CabeceraInvalida(t *testing.T) {
	fecha := time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		mutacion func(e *entity.Emisor)
	}{
		{"emisor nulo", nil},
		{"ruc vacío", func(e *entity.Emisor) { e.RUC = "" }},
		{"ruc no numérico", func(e *entity.Emisor) { e.RUC = "17900000000AB" }},
		{"ruc demasiado largo", func(e *entity.Emisor) { e.RUC = "17900000000011234" }},
		{"secuencial cero", func(e *entity.Emisor) { e.Secuencial = 0 }},
		{"secuencial desbordado", func(e *entity.Emisor) { e.Secuencial = 1_000_000_000 }},
		{"codDoc desconocido", func(e *entity.Emisor) { e.CodDoc = "99" }},
		{"ambiente inválido", func(e *entity.Emisor) { e.Ambiente = "3" }},
		{"tipoEmision no soportado", func(e *entity.Emisor) { e.TipoEmision = "2" }},
	}
	svc := sri.NewClaveAccesoService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.mutacion == nil {
				_, err = svc.Generar(nil, fecha)
			} else {
				emisor := nuevoEmisorPrueba()
				tt.mutacion(emisor)
				_, err = svc.Generar(emisor, fecha)
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrCabeceraInvalida))
		})
	}
}

func TestFormatearNumeroComprobante(t *testing.T) {
	emisor := nuevoEmisorPrueba()
	assert.Equal(t, "001-001-000000015", sri.FormatearNumeroComprobante(emisor))

	emisor.Establecimiento = "002"
	emisor.PuntoEmision = "010"
	emisor.Secuencial = 123
	assert.Equal(t, "002-010-000000123", sri.FormatearNumeroComprobante(emisor))
}
