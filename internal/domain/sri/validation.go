package sri

import (
	"errors"
	"fmt"

	"github.com/dquishpe/sri-comprobantes/internal/domain"
	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

// ValidarComprobante comprueba que el cuerpo del comprobante tenga los campos
// obligatorios de su variante. No valida coherencia aritmética: eso es trabajo
// del validador opcional (coherencia.go), que el llamador invoca si lo desea.
func ValidarComprobante(c *entity.Comprobante) error {
	if c == nil {
		return fmt.Errorf("%w: comprobante nulo", domain.ErrComprobanteInvalido)
	}
	tipo, err := c.Tipo()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrComprobanteInvalido, err)
	}
	if c.Emisor.RazonSocial == "" {
		return fmt.Errorf("%w: razón social del emisor requerida", domain.ErrComprobanteInvalido)
	}
	if c.Emisor.DirMatriz == "" {
		return fmt.Errorf("%w: dirección matriz requerida", domain.ErrComprobanteInvalido)
	}
	if c.FechaEmision.IsZero() {
		return fmt.Errorf("%w: fecha de emisión requerida", domain.ErrComprobanteInvalido)
	}

	switch tipo {
	case entity.TipoNotaCredito:
		return validarNotaCredito(c.NotaCredito)
	case entity.TipoNotaDebito:
		return validarNotaDebito(c.NotaDebito)
	case entity.TipoGuiaRemision:
		return validarGuiaRemision(c.GuiaRemision)
	default:
		return fmt.Errorf("%w: tipo %q no soportado", domain.ErrComprobanteInvalido, tipo)
	}
}

func validarComprador(comprador *entity.Comprador) error {
	var errs []error
	if comprador.RazonSocial == "" {
		errs = append(errs, errors.New("razón social del comprador requerida"))
	}
	if comprador.Identificacion == "" {
		errs = append(errs, errors.New("identificación del comprador requerida"))
	}
	if comprador.TipoIdentificacion != "" && !pkgsri.ValidIdentificationTypeCodes[comprador.TipoIdentificacion] {
		errs = append(errs, fmt.Errorf("tipo de identificación %q desconocido", comprador.TipoIdentificacion))
	}
	return errors.Join(errs...)
}

func validarNotaCredito(nc *entity.NotaCredito) error {
	var errs []error
	if err := validarComprador(&nc.Comprador); err != nil {
		errs = append(errs, err)
	}
	if nc.DocModificado.Numero == "" {
		errs = append(errs, errors.New("número del documento modificado requerido"))
	}
	if nc.DocModificado.FechaEmision.IsZero() {
		errs = append(errs, errors.New("fecha del documento sustento requerida"))
	}
	if len(nc.Detalles) == 0 {
		errs = append(errs, errors.New("la nota de crédito debe tener al menos un detalle"))
	}
	for i, d := range nc.Detalles {
		if d.Descripcion == "" {
			errs = append(errs, fmt.Errorf("detalle %d: descripción requerida", i+1))
		}
		if d.Cantidad.IsNegative() || d.PrecioUnitario.IsNegative() || d.Descuento.IsNegative() {
			errs = append(errs, fmt.Errorf("detalle %d: cantidad, precio y descuento no pueden ser negativos", i+1))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrComprobanteInvalido}, errs...)...)
	}
	return nil
}

func validarNotaDebito(nd *entity.NotaDebito) error {
	var errs []error
	if err := validarComprador(&nd.Comprador); err != nil {
		errs = append(errs, err)
	}
	if nd.DocModificado.Numero == "" {
		errs = append(errs, errors.New("número del documento modificado requerido"))
	}
	if len(nd.Motivos) == 0 {
		errs = append(errs, errors.New("la nota de débito debe tener al menos un motivo"))
	}
	for i, m := range nd.Motivos {
		if m.Razon == "" {
			errs = append(errs, fmt.Errorf("motivo %d: razón requerida", i+1))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrComprobanteInvalido}, errs...)...)
	}
	return nil
}

func validarGuiaRemision(g *entity.GuiaRemision) error {
	var errs []error
	if g.DirPartida == "" {
		errs = append(errs, errors.New("dirección de partida requerida"))
	}
	if g.MotivoTraslado == "" {
		errs = append(errs, errors.New("motivo de traslado requerido"))
	}
	if g.Transportista.RazonSocial == "" {
		errs = append(errs, errors.New("razón social del transportista requerida"))
	}
	if g.Transportista.Identificacion == "" {
		errs = append(errs, errors.New("identificación del transportista requerida"))
	}
	if g.Transportista.TipoIdentificacion == "" {
		errs = append(errs, errors.New("tipo de identificación del transportista requerido"))
	}
	if g.FechaIniTransporte.IsZero() || g.FechaFinTransporte.IsZero() {
		errs = append(errs, errors.New("fechas de inicio y fin de transporte requeridas"))
	}
	if len(g.Destinatarios) == 0 {
		errs = append(errs, errors.New("la guía debe incluir al menos un destinatario"))
	}
	for i, dest := range g.Destinatarios {
		if dest.Identificacion == "" {
			errs = append(errs, fmt.Errorf("destinatario %d: identificación requerida", i+1))
		}
		if dest.RazonSocial == "" {
			errs = append(errs, fmt.Errorf("destinatario %d: razón social requerida", i+1))
		}
		if dest.Direccion == "" {
			errs = append(errs, fmt.Errorf("destinatario %d: dirección requerida", i+1))
		}
		if len(dest.Productos) == 0 {
			errs = append(errs, fmt.Errorf("destinatario %d: debe incluir productos", i+1))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrComprobanteInvalido}, errs...)...)
	}
	return nil
}
