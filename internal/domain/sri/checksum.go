// Package sri: algoritmos de dominio para comprobantes electrónicos SRI
// (Ecuador): dígito verificador módulo 11 y clave de acceso de 49 dígitos.
package sri

import (
	"fmt"

	"github.com/dquishpe/sri-comprobantes/internal/domain"
)

// LargoClaveParcial es el largo exacto de la clave sin dígito verificador.
const LargoClaveParcial = 48

// CalcularDigitoVerificador calcula el dígito verificador módulo 11 de los 48
// primeros dígitos de la clave de acceso.
//
// Algoritmo: se recorren los dígitos de derecha a izquierda con pesos cíclicos
// 2,3,4,5,6,7,2,...; resultado = 11 - (suma mod 11); 11 se colapsa a 0 y 10 a 1
// (regla anticolisión del formato SRI).
func CalcularDigitoVerificador(claveParcial string) (int, error) {
	if len(claveParcial) != LargoClaveParcial {
		return 0, fmt.Errorf("%w: se esperaban %d dígitos, se recibieron %d",
			domain.ErrClaveParcialInvalida, LargoClaveParcial, len(claveParcial))
	}

	suma := 0
	factor := 2
	for i := len(claveParcial) - 1; i >= 0; i-- {
		c := claveParcial[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: carácter no numérico %q en posición %d",
				domain.ErrClaveParcialInvalida, c, i)
		}
		suma += int(c-'0') * factor
		if factor == 7 {
			factor = 2
		} else {
			factor++
		}
	}

	resultado := 11 - suma%11
	switch resultado {
	case 11:
		return 0, nil
	case 10:
		return 1, nil
	default:
		return resultado, nil
	}
}
