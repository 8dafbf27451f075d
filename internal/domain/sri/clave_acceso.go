package sri

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dquishpe/sri-comprobantes/internal/domain"
	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// Posiciones (0-indexed) de los segmentos dentro de la clave de 49 dígitos.
// Composición: fecha(8 ddmmyyyy) + codDoc(2) + ruc(13) + ambiente(1) +
// serie(6) + secuencial(9) + códigoNumérico(8) + tipoEmisión(1) + verificador(1).
const (
	SegmentoAleatorioInicio = 39
	SegmentoAleatorioFin    = 47
	LargoClave              = 49
	secuencialMax           = 999_999_999
)

// ClaveAccesoService genera la clave de acceso de 49 dígitos que identifica un
// comprobante electrónico ante el SRI.
type ClaveAccesoService struct{}

// NewClaveAccesoService crea el servicio.
func NewClaveAccesoService() *ClaveAccesoService {
	return &ClaveAccesoService{}
}

// Generar construye la clave de acceso a partir de la cabecera y la fecha de
// emisión. El código numérico de 8 dígitos se sortea en cada llamada: dos
// claves para el mismo comprobante difieren solo en ese segmento y en el
// dígito verificador resultante.
func (s *ClaveAccesoService) Generar(emisor *entity.Emisor, fechaEmision time.Time) (string, error) {
	if emisor == nil {
		return "", fmt.Errorf("%w: emisor nulo", domain.ErrCabeceraInvalida)
	}
	ruc, err := padNumeric("ruc", emisor.RUC, 13)
	if err != nil {
		return "", err
	}
	estab, err := padNumeric("establecimiento", emisor.Establecimiento, 3)
	if err != nil {
		return "", err
	}
	ptoEmi, err := padNumeric("puntoEmision", emisor.PuntoEmision, 3)
	if err != nil {
		return "", err
	}
	if emisor.Secuencial < 1 || emisor.Secuencial > secuencialMax {
		return "", fmt.Errorf("%w: secuencial %d fuera de rango [1, %d]",
			domain.ErrCabeceraInvalida, emisor.Secuencial, secuencialMax)
	}
	if !pkgsri.ValidDocTypeCodes[emisor.CodDoc] {
		return "", fmt.Errorf("%w: codDoc %q desconocido", domain.ErrCabeceraInvalida, emisor.CodDoc)
	}
	ambiente := emisor.Ambiente
	if ambiente == "" {
		ambiente = pkgsri.AmbientePruebas
	}
	if ambiente != pkgsri.AmbientePruebas && ambiente != pkgsri.AmbienteProduccion {
		return "", fmt.Errorf("%w: ambiente %q inválido", domain.ErrCabeceraInvalida, ambiente)
	}
	tipoEmision := emisor.TipoEmision
	if tipoEmision == "" {
		tipoEmision = pkgsri.EmisionNormal
	}
	if tipoEmision != pkgsri.EmisionNormal {
		return "", fmt.Errorf("%w: tipoEmision %q no soportado", domain.ErrCabeceraInvalida, tipoEmision)
	}

	// Código numérico de 8 dígitos, uniforme; solo reduce colisiones entre
	// emisiones concurrentes, sin valor criptográfico.
	codigoNumerico := fmt.Sprintf("%08d", rand.IntN(100_000_000))

	claveParcial := fechaEmision.Format("02012006") +
		emisor.CodDoc +
		ruc +
		ambiente +
		estab + ptoEmi +
		fmt.Sprintf("%09d", emisor.Secuencial) +
		codigoNumerico +
		tipoEmision

	verificador, err := CalcularDigitoVerificador(claveParcial)
	if err != nil {
		return "", err
	}
	return claveParcial + fmt.Sprintf("%d", verificador), nil
}

// FormatearNumeroComprobante arma el número visible 001-001-000000001.
func FormatearNumeroComprobante(emisor *entity.Emisor) string {
	return fmt.Sprintf("%s-%s-%09d",
		zeroPad(soloDigitos(emisor.Establecimiento), 3),
		zeroPad(soloDigitos(emisor.PuntoEmision), 3),
		emisor.Secuencial)
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// padNumeric valida que el valor sea numérico de a lo más width dígitos y lo
// rellena con ceros a la izquierda.
func padNumeric(campo, valor string, width int) (string, error) {
	if valor == "" {
		return "", fmt.Errorf("%w: %s es obligatorio", domain.ErrCabeceraInvalida, campo)
	}
	if len(valor) > width {
		return "", fmt.Errorf("%w: %s %q excede %d dígitos", domain.ErrCabeceraInvalida, campo, valor, width)
	}
	for i := 0; i < len(valor); i++ {
		if valor[i] < '0' || valor[i] > '9' {
			return "", fmt.Errorf("%w: %s %q contiene caracteres no numéricos",
				domain.ErrCabeceraInvalida, campo, valor)
		}
	}
	return strings.Repeat("0", width-len(valor)) + valor, nil
}

func soloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
