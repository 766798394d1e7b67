package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type ProductService struct {
	BaseURL string        `yaml:"PRODUCT_SERVICE_URL" env:"PRODUCT_SERVICE_URL" env-default:"http://product-service:3000"`
	Timeout time.Duration `yaml:"PRODUCT_SERVICE_TIMEOUT" env:"PRODUCT_SERVICE_TIMEOUT" env-default:"5s"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"OTLP_ENDPOINT" env:"OTLP_ENDPOINT" env-default:""`
}

type Config struct {
	Env            string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer     `yaml:"http_server"`
	Database       Database       `yaml:"database"`
	ProductService ProductService `yaml:"product_service"`
	Telemetry      Telemetry      `yaml:"telemetry"`
}

func MustLoad() *Config {

	// .env is optional, real environment wins
	_ = godotenv.Load()

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {

			log.Fatal("Config path is not set")

		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {

		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg

}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}
