// Package emision orquesta el ciclo de emisión offline de un comprobante:
//
//	Validación → Clave de acceso → XML → Firma XAdES-BES → RIDE
//
// El servicio no envía nada al SRI: la recepción y autorización en línea
// quedan fuera de este módulo.
package emision

import (
	"context"
	"crypto/tls"

	"github.com/google/uuid"

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	domsri "github.com/dquishpe/sri-comprobantes/internal/domain/sri"
	"github.com/dquishpe/sri-comprobantes/pkg/logger"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// Resultado es el producto de una emisión completa.
type Resultado struct {
	EmisionID         string // correlativo interno, no viaja en el comprobante
	ClaveAcceso       string
	NumeroComprobante string // 001-001-000000001
	XML               []byte
	XMLFirmado        []byte // nil si no se configuró certificado
	RutaRide          string
}

// Servicio orquesta la emisión. El firmador es opcional: sin certificado se
// emite el XML sin firma, útil en pruebas y para firmar en un paso posterior.
type Servicio struct {
	claves     *domsri.ClaveAccesoService
	xmlBuilder XMLBuilder
	ride       RideGenerator
	firmador   pkgsri.Signer
	cert       tls.Certificate
	firmar     bool
	log        *logger.Logger
}

// NewServicio construye el servicio de emisión sin firma.
func NewServicio(claves *domsri.ClaveAccesoService, xmlBuilder XMLBuilder, ride RideGenerator, log *logger.Logger) *Servicio {
	if log == nil {
		log = logger.Nop()
	}
	return &Servicio{
		claves:     claves,
		xmlBuilder: xmlBuilder,
		ride:       ride,
		log:        log,
	}
}

// ConFirma habilita la firma XAdES-BES con el certificado dado.
func (s *Servicio) ConFirma(firmador pkgsri.Signer, cert tls.Certificate) *Servicio {
	s.firmador = firmador
	s.cert = cert
	s.firmar = firmador != nil
	return s
}

// Emitir ejecuta el ciclo completo para un comprobante. La clave de acceso se
// genera aquí: dos llamadas sobre el mismo comprobante producen claves con
// distinto código numérico.
func (s *Servicio) Emitir(ctx context.Context, c *entity.Comprobante) (*Resultado, error) {
	emisionID := uuid.NewString()
	log := s.log.With().Str("emision_id", emisionID).Logger()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := domsri.ValidarComprobante(c); err != nil {
		log.Warn().Err(err).Msg("comprobante inválido")
		return nil, err
	}

	clave, err := s.claves.Generar(&c.Emisor, c.FechaEmision)
	if err != nil {
		log.Warn().Err(err).Msg("cabecera inválida")
		return nil, err
	}
	log = log.With().Str("clave_acceso", clave).Logger()

	xmlBytes, err := s.xmlBuilder.Build(c, clave)
	if err != nil {
		log.Error().Err(err).Msg("error construyendo XML")
		return nil, err
	}

	var firmado []byte
	if s.firmar {
		firmado, err = s.firmador.Sign(xmlBytes, s.cert)
		if err != nil {
			log.Error().Err(err).Msg("error firmando XML")
			return nil, err
		}
	}

	ruta, err := s.ride.Guardar(c, clave)
	if err != nil {
		log.Error().Err(err).Msg("error generando RIDE")
		return nil, err
	}

	log.Info().
		Str("ruta_ride", ruta).
		Str("cod_doc", c.Emisor.CodDoc).
		Msg("comprobante emitido")

	return &Resultado{
		EmisionID:         emisionID,
		ClaveAcceso:       clave,
		NumeroComprobante: domsri.FormatearNumeroComprobante(&c.Emisor),
		XML:               xmlBytes,
		XMLFirmado:        firmado,
		RutaRide:          ruta,
	}, nil
}
