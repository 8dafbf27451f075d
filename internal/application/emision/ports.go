package emision

import "github.com/dquishpe/sri-comprobantes/internal/domain/entity"

// XMLBuilder serializa un comprobante al XML de su esquema SRI.
type XMLBuilder interface {
	Build(c *entity.Comprobante, claveAcceso string) ([]byte, error)
}

// RideGenerator produce la representación impresa del comprobante.
type RideGenerator interface {
	Generate(c *entity.Comprobante, claveAcceso string) ([]byte, error)
	Guardar(c *entity.Comprobante, claveAcceso string) (string, error)
}
