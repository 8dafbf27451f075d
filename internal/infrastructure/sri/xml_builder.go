package sri

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/dquishpe/sri-comprobantes/internal/domain"
	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	domsri "github.com/dquishpe/sri-comprobantes/internal/domain/sri"
)

// Versiones de esquema por tipo de documento.
const (
	VersionNotaCredito  = "1.1.0"
	VersionNotaDebito   = "1.0.0"
	VersionGuiaRemision = "1.1.0"
)

// XMLBuilderService serializa un comprobante validado al XML del esquema SRI
// de su variante. La salida es determinista: mismas entradas, mismos bytes.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// Build genera el XML (sin firmar) del comprobante con la clave de acceso ya
// generada. La variante se resuelve con Tipo(). El cuerpo se valida aquí
// mismo: un comprobante incompleto nunca produce XML, lo llame quien lo llame.
func (s *XMLBuilderService) Build(c *entity.Comprobante, claveAcceso string) ([]byte, error) {
	if err := domsri.ValidarComprobante(c); err != nil {
		return nil, err
	}
	tipo, err := c.Tipo()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrComprobanteInvalido, err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	switch tipo {
	case entity.TipoNotaCredito:
		err = s.buildNotaCredito(enc, c, claveAcceso)
	case entity.TipoNotaDebito:
		err = s.buildNotaDebito(enc, c, claveAcceso)
	case entity.TipoGuiaRemision:
		err = s.buildGuiaRemision(enc, c, claveAcceso)
	default:
		err = fmt.Errorf("%w: tipo %q no soportado", domain.ErrComprobanteInvalido, tipo)
	}
	if err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// comprobanteRoot arma el elemento raíz con los atributos que exige el esquema;
// id="comprobante" es la referencia URI de la firma XAdES.
func comprobanteRoot(local, version string) xml.StartElement {
	return xml.StartElement{
		Name: xml.Name{Local: local},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "id"}, Value: "comprobante"},
			{Name: xml.Name{Local: "version"}, Value: version},
		},
	}
}
