package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo). El núcleo de emisión nunca lee estado ambiente: el
// host carga este struct una sola vez y lo pasa explícitamente.
type Config struct {
	App AppConfig
	SRI SRIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// SRIConfig configuración para emisión de comprobantes electrónicos SRI (Ecuador).
type SRIConfig struct {
	Ambiente      string // "1" = Pruebas, "2" = Producción
	DirSalidaRide string // Directorio donde el renderer persiste los PDF RIDE
	CertPath      string // Ruta al certificado .p12 (vacío = no firmar)
	CertPassword  string // Contraseña del .p12
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SRI_AMBIENTE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "sri-comprobantes"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		SRI: SRIConfig{
			Ambiente:      getString(v, "SRI_AMBIENTE", "1"),
			DirSalidaRide: getString(v, "SRI_DIR_RIDE", "temp/ride"),
			CertPath:      getString(v, "SRI_CERT_PATH", ""),
			CertPassword:  getString(v, "SRI_CERT_PASSWORD", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
