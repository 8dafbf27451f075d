package sri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dquishpe/sri-comprobantes/pkg/sri"
)

func TestValidateCedula(t *testing.T) {
	tests := []struct {
		name    string
		cedula  string
		wantErr bool
	}{
		{"cédula válida", "1711111110", false},
		{"dígito verificador incorrecto", "1711111111", true},
		{"provincia fuera de rango", "2611111110", true},
		{"provincia cero", "0011111110", true},
		{"tercer dígito >= 6", "1761111110", true},
		{"longitud incorrecta", "171111111", true},
		{"caracteres no numéricos", "17111111AB", true},
		{"vacía", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sri.ValidateCedula(tt.cedula)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRUC(t *testing.T) {
	tests := []struct {
		name    string
		ruc     string
		wantErr bool
	}{
		{"sociedad privada válida", "1790011674001", false},
		{"entidad pública válida", "1760001550001", false},
		{"persona natural válida", "1711111110001", false},
		{"sociedad con verificador incorrecto", "1790011675001", true},
		{"sociedad sin sufijo 001", "1790011674002", true},
		{"pública sin sufijo 0001", "1760001550011", true},
		{"natural con cédula inválida", "1711111111001", true},
		{"tercer dígito inválido", "1780011674001", true},
		{"longitud incorrecta", "179001167400", true},
		{"no numérico", "17900116740AB", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sri.ValidateRUC(tt.ruc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
