package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverMemoria  = "memoria"
	DriverPostgres = "postgres"
)

// Modos del codec de tokens de sesión.
const (
	TokenModePlano   = "plano"   // token autodescriptivo sin firma (formato heredado)
	TokenModeFirmado = "firmado" // JWT HS256
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	DB      DBConfig
	Token   TokenConfig
}

// AppConfig configuración general de la aplicación.
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

// StorageConfig selecciona el driver de persistencia: "memoria" (tablas sembradas
// en proceso, el modo por defecto) o "postgres".
type StorageConfig struct {
	Driver string
}

// DBConfig configuración de PostgreSQL (solo aplica con STORAGE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// TokenConfig configuración del token de sesión.
// Mode "plano" reproduce el formato heredado (tres segmentos, payload base64 sin
// firma); "firmado" emite JWT HS256 con los mismos claims y requiere Secret.
type TokenConfig struct {
	Mode     string
	Secret   string
	ExpHours int // ventana de validez en horas
	Issuer   string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, TOKEN_MODE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "guardarecursos-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver: getString(v, "STORAGE_DRIVER", DriverMemoria),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "guardarecursos"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Token: TokenConfig{
			Mode:     getString(v, "TOKEN_MODE", TokenModePlano),
			Secret:   getString(v, "TOKEN_SECRET", ""),
			ExpHours: getInt(v, "TOKEN_EXPIRATION_HOURS", 24),
			Issuer:   getString(v, "TOKEN_ISSUER", "conap-guardarecursos"),
		},
	}

	if cfg.Storage.Driver != DriverMemoria && cfg.Storage.Driver != DriverPostgres {
		return nil, fmt.Errorf("config: STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
	}
	if cfg.Token.Mode != TokenModePlano && cfg.Token.Mode != TokenModeFirmado {
		return nil, fmt.Errorf("config: TOKEN_MODE desconocido: %q", cfg.Token.Mode)
	}
	if cfg.Token.Mode == TokenModeFirmado && cfg.Token.Secret == "" {
		return nil, fmt.Errorf("config: TOKEN_MODE=firmado requiere TOKEN_SECRET")
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
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
