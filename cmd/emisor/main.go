// emisor emite un comprobante electrónico SRI desde un archivo JSON:
// genera la clave de acceso, el XML del esquema correspondiente, la firma
// XAdES-BES (si hay certificado configurado) y el RIDE en PDF.
//
// Uso: emisor <comprobante.json> [salida.xml]
//
// Configuración por variables de entorno: SRI_AMBIENTE, SRI_DIR_RIDE,
// SRI_CERT_PATH, SRI_CERT_PASSWORD, APP_ENV, LOG_LEVEL.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/dquishpe/sri-comprobantes/internal/application/emision"
	"github.com/dquishpe/sri-comprobantes/internal/domain/entity"
	domsri "github.com/dquishpe/sri-comprobantes/internal/domain/sri"
	infrapdf "github.com/dquishpe/sri-comprobantes/internal/infrastructure/pdf"
	infrasri "github.com/dquishpe/sri-comprobantes/internal/infrastructure/sri"
	"github.com/dquishpe/sri-comprobantes/internal/infrastructure/sri/signer"
	"github.com/dquishpe/sri-comprobantes/pkg/config"
	"github.com/dquishpe/sri-comprobantes/pkg/logger"
	pkgsri "github.com/dquishpe/sri-comprobantes/pkg/sri"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	if len(os.Args) < 2 {
		log.Fatal().Msg("uso: emisor <comprobante.json> [salida.xml]")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("leer comprobante")
	}
	var comprobante entity.Comprobante
	if err := json.Unmarshal(data, &comprobante); err != nil {
		log.Fatal().Err(err).Msg("decodificar comprobante")
	}
	if comprobante.Emisor.Ambiente == "" {
		comprobante.Emisor.Ambiente = cfg.SRI.Ambiente
	}
	// Advertencia, no bloqueo: el SRI mantiene RUC históricos que no cumplen
	// el algoritmo de dígito verificador.
	if err := pkgsri.ValidateRUC(comprobante.Emisor.RUC); err != nil {
		log.Warn().Err(err).Str("ruc", comprobante.Emisor.RUC).Msg("RUC del emisor no pasa la validación estructural")
	}

	svc := emision.NewServicio(
		domsri.NewClaveAccesoService(),
		infrasri.NewXMLBuilderService(),
		infrapdf.NewRideService(cfg.SRI.DirSalidaRide),
		log,
	)

	if cfg.SRI.CertPath != "" {
		cert, err := signer.LoadFromP12(cfg.SRI.CertPath, cfg.SRI.CertPassword)
		if err != nil {
			log.Fatal().Err(err).Str("cert", cfg.SRI.CertPath).Msg("cargar certificado")
		}
		svc.ConFirma(signer.NewDigitalSignatureService(), cert)
	}

	res, err := svc.Emitir(context.Background(), &comprobante)
	if err != nil {
		log.Fatal().Err(err).Msg("emitir comprobante")
	}

	salida := res.XML
	if res.XMLFirmado != nil {
		salida = res.XMLFirmado
	}
	if len(os.Args) > 2 {
		if err := os.WriteFile(os.Args[2], salida, 0o644); err != nil {
			log.Fatal().Err(err).Msg("escribir XML")
		}
	} else {
		os.Stdout.Write(salida)
	}

	log.Info().
		Str("clave_acceso", res.ClaveAcceso).
		Str("numero", res.NumeroComprobante).
		Str("ride", res.RutaRide).
		Msg("emisión completada")
}
