package sri

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
)

// ErrIncoherente agrupa errores de coherencia aritmética.
var ErrIncoherente = errors.New("totales incoherentes con los detalles")

// toleranciaRedondeo admite diferencias de redondeo de un centavo por línea.
var toleranciaRedondeo = decimal.NewFromFloat(0.01)

// ValidarCoherenciaNotaCredito cruza los totales declarados contra la suma de
// los detalles: cantidad × precio − descuento ≈ subtotal de línea, y la suma
// de subtotales ≈ totalSinImpuestos.
//
// Es un colaborador opcional: ni el encoder ni el renderer lo invocan; el
// llamador decide si condiciona la emisión a su resultado.
func ValidarCoherenciaNotaCredito(nc *entity.NotaCredito) error {
	if nc == nil {
		return fmt.Errorf("%w: nota de crédito nula", ErrIncoherente)
	}
	var errs []error
	var sumaSubtotales decimal.Decimal
	for i, d := range nc.Detalles {
		esperado := d.Cantidad.Mul(d.PrecioUnitario).Sub(d.Descuento)
		if esperado.Sub(d.PrecioTotalSinImpuesto).Abs().GreaterThan(toleranciaRedondeo) {
			errs = append(errs, fmt.Errorf(
				"detalle %d: cantidad×precio−descuento (%s) no coincide con el subtotal (%s)",
				i+1, esperado.Round(2).String(), d.PrecioTotalSinImpuesto.String()))
		}
		sumaSubtotales = sumaSubtotales.Add(d.PrecioTotalSinImpuesto)
	}
	if sumaSubtotales.Sub(nc.TotalSinImpuestos).Abs().GreaterThan(toleranciaRedondeo) {
		errs = append(errs, fmt.Errorf(
			"totalSinImpuestos (%s) no coincide con la suma de subtotales (%s)",
			nc.TotalSinImpuestos.String(), sumaSubtotales.Round(2).String()))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrIncoherente}, errs...)...)
	}
	return nil
}

// ValidarCoherenciaNotaDebito comprueba que totalSinImpuestos coincida con la
// suma de los valores de los motivos.
func ValidarCoherenciaNotaDebito(nd *entity.NotaDebito) error {
	if nd == nil {
		return fmt.Errorf("%w: nota de débito nula", ErrIncoherente)
	}
	var sumaMotivos decimal.Decimal
	for _, m := range nd.Motivos {
		sumaMotivos = sumaMotivos.Add(m.Valor)
	}
	if sumaMotivos.Sub(nd.TotalSinImpuestos).Abs().GreaterThan(toleranciaRedondeo) {
		return fmt.Errorf("%w: totalSinImpuestos (%s) no coincide con la suma de motivos (%s)",
			ErrIncoherente, nd.TotalSinImpuestos.String(), sumaMotivos.Round(2).String())
	}
	return nil
}
