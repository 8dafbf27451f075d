package sri

import "crypto/tls"

// Signer firma el XML de un comprobante y devuelve el XML con el nodo
// ds:Signature inyectado como último hijo del elemento raíz.
type Signer interface {
	// Sign toma el XML del comprobante (sin firma) y el certificado con llave
	// privada, y retorna el XML firmado listo para enviar al SRI.
	Sign(xmlBytes []byte, cert tls.Certificate) ([]byte, error)
}
