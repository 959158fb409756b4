// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	MongoConnection `yaml:"mongo_connection"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	JWTToken        `yaml:"jwttoken"`
	Countries       `yaml:"countries"`
}

// MongoConnection структура для настройки подключения к MongoDB
type MongoConnection struct {
	URI            string        `yaml:"uri" env:"MONGO_URI"`
	Database       string        `yaml:"database" env-default:"country_explorer"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env-default:"10s"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP   string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP   time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout   time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigin string        `yaml:"allowed_origin" env:"ALLOWED_ORIGIN" env-default:"*"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"720h"`
}

// Countries структура для настройки клиента внешнего API стран
type Countries struct {
	BaseURL  string        `yaml:"base_url" env-default:"https://restcountries.com/v3.1"`
	CacheTTL time.Duration `yaml:"cache_ttl" env-default:"24h"`
}

// MustLoad функция для загрузки конфига, путь берется из переменной CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"MongoConnection:\n"+
			"  URI: %s\n"+
			"  Database: %s\n"+
			"  ConnectTimeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"  MaxRetries: %d\n"+
			"  DialTimeout: %s\n"+
			"  Timeout: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"  AllowedOrigin: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Countries:\n"+
			"  BaseURL: %s\n"+
			"  CacheTTL: %s\n",
		c.Env,
		c.URI,
		c.Database,
		c.ConnectTimeout,
		c.AddressRedis,
		c.User,
		c.DB,
		c.MaxRetries,
		c.DialTimeout,
		c.TimeoutRedis,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AllowedOrigin,
		c.TokenTTL,
		c.BaseURL,
		c.CacheTTL,
	)
}
