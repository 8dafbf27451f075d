// Package sri contiene catálogos y validaciones alineados a la Ficha Técnica
// de Comprobantes Electrónicos del SRI (Ecuador), esquemas offline v1.1.0.
package sri

// =============================================================================
// Tabla 3 - Tipos de comprobante (codDoc)
// =============================================================================

const (
	DocFactura      = "01" // Factura
	DocNotaCredito  = "04" // Nota de Crédito
	DocNotaDebito   = "05" // Nota de Débito
	DocGuiaRemision = "06" // Guía de Remisión
	DocRetencion    = "07" // Comprobante de Retención
)

// ValidDocTypeCodes códigos de comprobante soportados por el pipeline de emisión.
var ValidDocTypeCodes = map[string]bool{
	DocFactura: true, DocNotaCredito: true, DocNotaDebito: true,
	DocGuiaRemision: true, DocRetencion: true,
}

// AbreviaturaDoc devuelve la abreviatura usada en los nombres de archivo RIDE
// (RIDE_NC_<claveAcceso>.pdf, etc.).
func AbreviaturaDoc(codDoc string) string {
	switch codDoc {
	case DocFactura:
		return "FC"
	case DocNotaCredito:
		return "NC"
	case DocNotaDebito:
		return "ND"
	case DocGuiaRemision:
		return "GR"
	case DocRetencion:
		return "RT"
	default:
		return "DOC"
	}
}

// =============================================================================
// Tabla 4 - Ambiente y tipo de emisión
// =============================================================================

const (
	AmbientePruebas    = "1" // Pruebas
	AmbienteProduccion = "2" // Producción
	EmisionNormal      = "1" // Emisión normal (único soportado offline)
)

// =============================================================================
// Tabla 6 - Tipos de identificación del comprador / transportista
// =============================================================================

const (
	IdentRUC             = "04" // RUC (13 dígitos)
	IdentCedula          = "05" // Cédula (10 dígitos)
	IdentPasaporte       = "06" // Pasaporte
	IdentConsumidorFinal = "07" // Consumidor final (9999999999999)
	IdentExterior        = "08" // Identificación del exterior
)

// ValidIdentificationTypeCodes códigos de identificación válidos para comprador,
// transportista y destinatario.
var ValidIdentificationTypeCodes = map[string]bool{
	IdentRUC: true, IdentCedula: true, IdentPasaporte: true,
	IdentConsumidorFinal: true, IdentExterior: true,
}

// =============================================================================
// Tabla 16/17 - Impuestos y códigos de porcentaje
// =============================================================================

const (
	ImpuestoIVA    = "2" // IVA
	ImpuestoICE    = "3" // ICE
	ImpuestoIRBPNR = "5" // IRBPNR (botellas plásticas)
)

// Códigos de porcentaje de IVA (codigoPorcentaje).
const (
	TarifaIVA0        = "0" // 0%
	TarifaIVA12       = "2" // 12%
	TarifaIVA14       = "3" // 14%
	TarifaIVA15       = "4" // 15%
	TarifaIVA5        = "5" // 5%
	TarifaIVANoObjeto = "6" // No objeto de impuesto
	TarifaIVAExento   = "7" // Exento de IVA
	TarifaIVA8        = "8" // 8%
)

// =============================================================================
// Motivos de traslado para Guías de Remisión (tabla oficial SRI)
// =============================================================================

var motivosTraslado = map[string]string{
	"01": "Venta",
	"02": "Compra",
	"03": "Devolución",
	"04": "Consignación",
	"05": "Traslado entre establecimientos",
	"06": "Traslado por emisor itinerante",
	"07": "Traslado para transformación",
	"08": "Importación",
	"09": "Exportación",
	"10": "Otros",
}

// DescripcionMotivoTraslado devuelve la descripción oficial del motivo de
// traslado, o "No especificado" si el código no está en la tabla.
func DescripcionMotivoTraslado(codigo string) string {
	if desc, ok := motivosTraslado[codigo]; ok {
		return desc
	}
	return "No especificado"
}

// Moneda fija para comprobantes emitidos en Ecuador.
const Moneda = "DOLAR"
