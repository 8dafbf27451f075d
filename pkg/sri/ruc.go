package sri

import "fmt"

// Coeficientes módulo 11 para RUC de sociedades privadas (tercer dígito 9)
// y entidades públicas (tercer dígito 6). Se aplican de izquierda a derecha.
var (
	rucPrivadaWeights = [9]int{4, 3, 2, 7, 6, 5, 4, 3, 2}
	rucPublicaWeights = [8]int{3, 2, 7, 6, 5, 4, 3, 2}
)

// ValidateCedula valida una cédula ecuatoriana de 10 dígitos (módulo 10).
// Los dos primeros dígitos son la provincia (01-24) y el tercero debe ser < 6.
func ValidateCedula(cedula string) error {
	if len(cedula) != 10 || !isNumeric(cedula) {
		return fmt.Errorf("sri: cédula debe tener 10 dígitos numéricos, se recibió %q", cedula)
	}
	provincia := int(cedula[0]-'0')*10 + int(cedula[1]-'0')
	if provincia < 1 || provincia > 24 {
		return fmt.Errorf("sri: código de provincia %02d fuera de rango (01-24)", provincia)
	}
	if cedula[2]-'0' >= 6 {
		return fmt.Errorf("sri: tercer dígito de cédula debe ser menor a 6")
	}
	var sum int
	for i := 0; i < 9; i++ {
		d := int(cedula[i] - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	expected := (10 - sum%10) % 10
	if int(cedula[9]-'0') != expected {
		return fmt.Errorf("sri: dígito verificador de cédula inválido: esperado %d, recibido %c", expected, cedula[9])
	}
	return nil
}

// ValidateRUC valida un RUC ecuatoriano de 13 dígitos según el tercer dígito:
// persona natural (0-5, cédula + "001"), entidad pública (6, módulo 11 sobre
// 8 dígitos + "0001") o sociedad privada (9, módulo 11 sobre 9 dígitos + "001").
func ValidateRUC(ruc string) error {
	if len(ruc) != 13 || !isNumeric(ruc) {
		return fmt.Errorf("sri: RUC debe tener 13 dígitos numéricos, se recibió %q", ruc)
	}
	switch tercer := ruc[2] - '0'; {
	case tercer < 6:
		if ruc[10:] != "001" {
			return fmt.Errorf("sri: RUC de persona natural debe terminar en 001")
		}
		return ValidateCedula(ruc[:10])
	case tercer == 6:
		if ruc[9:] != "0001" {
			return fmt.Errorf("sri: RUC de entidad pública debe terminar en 0001")
		}
		var sum int
		for i, w := range rucPublicaWeights {
			sum += int(ruc[i]-'0') * w
		}
		return checkMod11(sum, int(ruc[8]-'0'))
	case tercer == 9:
		if ruc[10:] != "001" {
			return fmt.Errorf("sri: RUC de sociedad debe terminar en 001")
		}
		var sum int
		for i, w := range rucPrivadaWeights {
			sum += int(ruc[i]-'0') * w
		}
		return checkMod11(sum, int(ruc[9]-'0'))
	default:
		return fmt.Errorf("sri: tercer dígito de RUC inválido: %c", ruc[2])
	}
}

func checkMod11(sum, got int) error {
	remainder := sum % 11
	expected := 0
	if remainder != 0 {
		expected = 11 - remainder
	}
	if expected == 10 {
		return fmt.Errorf("sri: RUC sin dígito verificador válido (residuo 1)")
	}
	if got != expected {
		return fmt.Errorf("sri: dígito verificador de RUC inválido: esperado %d, recibido %d", expected, got)
	}
	return nil
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
