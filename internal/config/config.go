// Package config fornece as estruturas e a função de carga da configuração
// da aplicação a partir de um arquivo YAML apontado por CONFIG_PATH.
// Segredos (token do gateway, chave JWT, senha SMTP) podem ser sobrescritos
// por variáveis de ambiente.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config é a estrutura raiz com todas as seções de configuração.
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	SitesPath               string `yaml:"sites_path" env:"SITES_PATH" env-default:"./config/sites.yaml"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	MercadoPago             `yaml:"mercado_pago"`
	RabbitMQ                `yaml:"rabbitmq"`
	SMTP                    `yaml:"smtp"`
	Affiliate               `yaml:"affiliate"`
	Premium                 `yaml:"premium"`
}

// HTTPServer é a seção de configuração do servidor HTTP.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection é a seção de configuração da conexão com o redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken é a seção de configuração do token de sessão.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// MercadoPago é a seção de configuração do gateway de pagamento.
// AccessToken é consumido apenas pelo reconciliador de pagamentos.
type MercadoPago struct {
	AccessToken     string `yaml:"access_token" env:"MP_ACCESS_TOKEN"`
	WebhookSecret   string `yaml:"webhook_secret" env:"MP_WEBHOOK_SECRET"`
	NotificationURL string `yaml:"notification_url"`
}

// RabbitMQ é a seção de configuração da conexão com o broker.
type RabbitMQ struct {
	RabbitConnection string        `yaml:"connection" env:"RABBITMQ_CONNECTION"`
	ConnectRetries   int           `yaml:"connect_retries" env-default:"5"`
	ConnectDelay     time.Duration `yaml:"connect_delay" env-default:"3s"`
}

// SMTP é a seção de configuração do envio de e-mails transacionais.
type SMTP struct {
	SMTPHost string `yaml:"host"`
	SMTPPort string `yaml:"port"`
	SMTPUser string `yaml:"user"`
	SMTPPass string `yaml:"pass" env:"SMTP_PASS"`
}

// Affiliate é a seção de configuração da rede de afiliados.
// PostbackURL aceita os marcadores {click_id} e {event}.
type Affiliate struct {
	PostbackURL string `yaml:"postback_url"`
}

// Premium é a seção de configuração do plano premium vendido no checkout.
type Premium struct {
	PlanPrice float64       `yaml:"plan_price" env-default:"29.90"`
	PlanDays  int           `yaml:"plan_days" env-default:"30"`
	ResetTTL  time.Duration `yaml:"reset_ttl" env-default:"1h"`
}

// MustLoad carrega a configuração do caminho em CONFIG_PATH e encerra o
// processo em caso de falha.
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
