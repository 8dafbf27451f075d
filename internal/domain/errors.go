package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrClaveParcialInvalida: la clave parcial para el dígito verificador no
	// tiene exactamente 48 dígitos numéricos.
	ErrClaveParcialInvalida = errors.New("clave parcial inválida")
	// ErrCabeceraInvalida: un campo del emisor viola su ancho fijo o formato.
	ErrCabeceraInvalida = errors.New("cabecera de comprobante inválida")
	// ErrComprobanteInvalido: faltan campos obligatorios del cuerpo para la
	// variante de comprobante solicitada.
	ErrComprobanteInvalido = errors.New("comprobante inválido")
	// ErrGeneracionCodigo: falló la generación del código escaneable (QR) o del
	// documento que lo contiene.
	ErrGeneracionCodigo = errors.New("error generando código escaneable")
	// ErrPersistencia: falló la escritura del artefacto generado a disco.
	ErrPersistencia = errors.New("error persistiendo artefacto")
)
