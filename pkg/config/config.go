package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento local soportados (equivalente al localStorage del navegador).
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	API     APIConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string // si el archivo existe se monta /docs
	StoreName   string // encabezado de comprobantes y título del feed
	PublicURL   string // URL pública de la tienda para los enlaces del feed
}

// HTTPConfig configuración del servidor local de vistas.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig configuración del backend REST remoto.
type APIConfig struct {
	BaseURL       string
	Timeout       time.Duration // peticiones normales
	UploadTimeout time.Duration // subida de imágenes
}

// StorageConfig configuración de la persistencia local (carrito y credencial).
type StorageConfig struct {
	Driver   string // memory, file, redis, postgres
	FilePath string
	Secret   string // opcional: sella la credencial con secretbox
}

// RedisConfig configuración del driver redis.
type RedisConfig struct {
	URL       string
	Namespace string
}

// DBConfig configuración de PostgreSQL para el driver postgres.
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

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, STORAGE_DRIVER, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "bjj-storefront"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
			StoreName:   getString(v, "STORE_NAME", "BJJ Store"),
			PublicURL:   strings.TrimRight(getString(v, "STORE_PUBLIC_URL", "http://127.0.0.1:3000"), "/"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		API: APIConfig{
			BaseURL:       strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8080"), "/"),
			Timeout:       time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 10)) * time.Second,
			UploadTimeout: time.Duration(getInt(v, "API_UPLOAD_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(getString(v, "STORAGE_DRIVER", StorageFile)),
			FilePath: getString(v, "STORAGE_FILE_PATH", "./data/storefront.json"),
			Secret:   getString(v, "STORAGE_SECRET", ""),
		},
		Redis: RedisConfig{
			URL:       getString(v, "REDIS_URL", "redis://localhost:6379/0"),
			Namespace: getString(v, "REDIS_NAMESPACE", "storefront"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "storefront"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}

	switch cfg.Storage.Driver {
	case StorageMemory, StorageFile, StorageRedis, StoragePostgres:
	default:
		return nil, fmt.Errorf("config: STORAGE_DRIVER desconocido %q", cfg.Storage.Driver)
	}
	if _, err := url.ParseRequestURI(cfg.API.BaseURL); err != nil {
		return nil, fmt.Errorf("config: API_BASE_URL inválida: %w", err)
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
