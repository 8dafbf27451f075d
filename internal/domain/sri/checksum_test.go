package sri_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquishpe/sri-comprobantes/internal/domain"
	"github.com/dquishpe/sri-comprobantes/internal/domain/sri"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores calculados a mano con el algoritmo módulo 11 del SRI:
// pesos cíclicos 2..7 de derecha a izquierda, resultado = 11 - (suma mod 11),
// con 11 → 0 y 10 → 1.
//
//   - 48 unos: cada ciclo de 6 pesos suma 27; 8 ciclos = 216; 216 mod 11 = 7;
//     11 - 7 = 4.
//   - 48 ceros: suma 0; 11 - 0 = 11 → 0 (regla de colapso).
//   - 47 ceros + "6": el 6 está en la posición más a la derecha (peso 2);
//     suma 12; 12 mod 11 = 1; 11 - 1 = 10 → 1 (regla anticolisión).
//   - 47 ceros + "1": suma 2; 11 - 2 = 9.
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularDigitoVerificador_Vectores(t *testing.T) {
	tests := []struct {
		name  string
		clave string
		want  int
	}{
		{"48 unos", strings.Repeat("1", 48), 4},
		{"suma múltiplo de 11 colapsa a 0", strings.Repeat("0", 48), 0},
		{"resultado 10 colapsa a 1", strings.Repeat("0", 47) + "6", 1},
		{"caso general", strings.Repeat("0", 47) + "1", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sri.CalcularDigitoVerificador(tt.clave)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalcularDigitoVerificador_SiempreUnDigito(t *testing.T) {
	claves := []string{
		"181120250417900000000011001001000000015123456781",
		strings.Repeat("9", 48),
		strings.Repeat("5", 48),
	}
	for _, clave := range claves {
		got, err := sri.CalcularDigitoVerificador(clave)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 9)
	}
}

func TestCalcularDigitoVerificador_EntradaInvalida(t *testing.T) {
	tests := []struct {
		name  string
		clave string
	}{
		{"muy corta", strings.Repeat("1", 47)},
		{"muy larga", strings.Repeat("1", 49)},
		{"vacía", ""},
		{"no numérica", strings.Repeat("1", 47) + "X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sri.CalcularDigitoVerificador(tt.clave)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrClaveParcialInvalida))
		})
	}
}
