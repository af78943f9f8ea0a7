package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	Metrics MetricsConfig
	Seed    SeedConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig configuración del almacén de blobs JSON.
// MaxMovements es el tope del ledger persistido; al superarlo se desechan los
// movimientos más viejos.
type StorageConfig struct {
	Dir          string
	Prefix       string
	MaxMovements int
}

// MetricsConfig configuración de Prometheus.
type MetricsConfig struct {
	Prefix string
}

// SeedConfig passwords de los usuarios sembrados en la primera corrida.
type SeedConfig struct {
	AdminPassword    string
	EmployeePassword string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "kiosco-stock"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "kiosco-stock"),
		},
		Storage: StorageConfig{
			Dir:          getString(v, "STORAGE_DIR", "./data"),
			Prefix:       getString(v, "STORAGE_PREFIX", "kiosco_stock_v1"),
			MaxMovements: getInt(v, "STORAGE_MAX_MOVEMENTS", 2000),
		},
		Metrics: MetricsConfig{
			Prefix: getString(v, "METRICS_PREFIX", "kiosco_stock"),
		},
		Seed: SeedConfig{
			AdminPassword:    getString(v, "SEED_ADMIN_PASSWORD", "admin123"),
			EmployeePassword: getString(v, "SEED_EMPLOYEE_PASSWORD", "123456"),
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

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
