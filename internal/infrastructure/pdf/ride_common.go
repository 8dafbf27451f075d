// Package pdf implementa la generación del RIDE (Representación Impresa de
// Documento Electrónico) para los comprobantes SRI soportados.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EMISOR: Razón Social + RUC + Dir    │  CUADRO: tipo de doc │
//	│                                      │  No. + clave + fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE / TRANSPORTE / DESTINATARIOS según la variante      │
//	│  TABLA de detalles / motivos / productos                     │
//	│  TOTALES (notas)                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR + clave de acceso + ambiente + leyenda SRI       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	marotoentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dquishpe/sri-comprobantes/internal/domain"
	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	domsri "github.com/dquishpe/sri-comprobantes/internal/domain/sri"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 44, Green: 62, Blue: 80}
	colorAccent  = &props.Color{Red: 41, Green: 128, Blue: 185}
	colorGray    = &props.Color{Red: 127, Green: 140, Blue: 141}
)

// ── Service ───────────────────────────────────────────────────────────────────

// RideService genera el RIDE de un comprobante y lo persiste en disco.
type RideService struct {
	dirSalida string
}

// NewRideService crea el servicio; dirSalida es el directorio donde Guardar
// deja los PDF.
func NewRideService(dirSalida string) *RideService {
	return &RideService{dirSalida: dirSalida}
}

// NombreArchivo arma el nombre RIDE_<abreviatura>_<claveAcceso>.pdf.
func NombreArchivo(codDoc, claveAcceso string) string {
	return fmt.Sprintf("RIDE_%s_%s.pdf", pkgsri.AbreviaturaDoc(codDoc), claveAcceso)
}

// Generate produce los bytes del PDF según la variante del comprobante.
func (s *RideService) Generate(c *entity.Comprobante, claveAcceso string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: comprobante nulo", domain.ErrComprobanteInvalido)
	}
	tipo, err := c.Tipo()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrComprobanteInvalido, err)
	}

	m := maroto.New(rideConfig(tituloRide(tipo), c.Emisor.RazonSocial))
	switch tipo {
	case entity.TipoNotaCredito:
		err = buildRideNotaCredito(m, c, claveAcceso)
	case entity.TipoNotaDebito:
		err = buildRideNotaDebito(m, c, claveAcceso)
	case entity.TipoGuiaRemision:
		err = buildRideGuiaRemision(m, c, claveAcceso)
	}
	if err != nil {
		return nil, err
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneracionCodigo, err)
	}
	return doc.GetBytes(), nil
}

// Guardar genera el RIDE y lo escribe en el directorio de salida; devuelve la
// ruta del archivo.
func (s *RideService) Guardar(c *entity.Comprobante, claveAcceso string) (string, error) {
	data, err := s.Generate(c, claveAcceso)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dirSalida, 0o755); err != nil {
		return "", fmt.Errorf("%w: crear directorio %s: %v", domain.ErrPersistencia, s.dirSalida, err)
	}
	ruta := filepath.Join(s.dirSalida, NombreArchivo(c.Emisor.CodDoc, claveAcceso))
	if err := os.WriteFile(ruta, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: escribir %s: %v", domain.ErrPersistencia, ruta, err)
	}
	return ruta, nil
}

func rideConfig(titulo, autor string) *marotoentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		WithAuthor(autor, true).
		Build()
}

func tituloRide(tipo string) string {
	switch tipo {
	case entity.TipoNotaCredito:
		return "Nota de Crédito Electrónica"
	case entity.TipoNotaDebito:
		return "Nota de Débito Electrónica"
	default:
		return "Guía de Remisión Electrónica"
	}
}

// ── Secciones comunes ─────────────────────────────────────────────────────────

// headerRows: datos del emisor (izq) y cuadro con tipo, número, clave de
// acceso y fecha (der).
func headerRows(c *entity.Comprobante, titulo, claveAcceso string, fecha string) []core.Row {
	e := &c.Emisor
	izq := col.New(7).Add(
		text.New(e.RazonSocial, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
		text.New("RUC: "+e.RUC, props.Text{Size: 9, Top: 8}),
		text.New("Dirección Matriz: "+e.DirMatriz, props.Text{Size: 8, Top: 13, Color: colorGray}),
		text.New("Obligado a llevar Contabilidad: "+siNo(e.ObligadoContabilidad), props.Text{Size: 8, Top: 18}),
	)
	der := col.New(5).Add(
		text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorPrimary, Top: 1}),
		text.New("No. "+domsri.FormatearNumeroComprobante(e), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: colorAccent, Top: 6}),
		text.New("NÚMERO DE AUTORIZACIÓN:", props.Text{Size: 7, Align: align.Center, Top: 12}),
		text.New(claveAcceso, props.Text{Size: 6.5, Align: align.Center, Color: colorGray, Top: 15}),
		text.New("Fecha Emisión: "+fecha, props.Text{Size: 8, Align: align.Center, Top: 19}),
	)
	rows := []core.Row{
		row.New(24).Add(izq, der),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
	if e.ContribuyenteEspecial != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Contribuyente Especial Nro. "+e.ContribuyenteEspecial, props.Text{Size: 8, Top: 1}),
		)))
	}
	return rows
}

func seccionTitulo(titulo string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// footerRows: QR, clave de acceso, ambiente y leyenda de validación.
func footerRows(c *entity.Comprobante, claveAcceso, qrPayload string) []core.Row {
	return []core.Row{
		line.NewRow(3),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(32).Add(
			col.New(3).Add(code.NewQr(qrPayload, props.Rect{Percent: 90, Center: true})),
			col.New(9).Add(
				text.New("Clave de Acceso:", props.Text{Style: fontstyle.Bold, Size: 7, Top: 2}),
				text.New(claveAcceso, props.Text{Size: 7, Top: 6, Color: colorGray}),
				text.New("Ambiente: "+nombreAmbiente(c.Emisor.Ambiente), props.Text{Size: 8, Top: 11}),
				text.New("Consulte la validez de este documento en www.sri.gob.ec", props.Text{Size: 6.5, Top: 17, Color: colorGray}),
			),
		),
	}
}

func nombreAmbiente(ambiente string) string {
	if ambiente == pkgsri.AmbienteProduccion {
		return "PRODUCCIÓN"
	}
	return "PRUEBAS"
}

func siNo(b bool) string {
	if b {
		return "SI"
	}
	return "NO"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
