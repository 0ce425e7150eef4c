package config

import (
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"glasslink"`

	Server ServerConfig `envPrefix:"SERVER_"`
	Auth   AuthConfig   `envPrefix:"AUTH_"`
	DB     DBConfig     `envPrefix:"DB_"`
	Redis  RedisConfig  `envPrefix:"REDIS_"`
	Email  EmailConfig  `envPrefix:"EMAIL_"`
	Notify NotifyConfig `envPrefix:"NOTIFY_"`
	Jaeger JaegerConfig `envPrefix:"JAEGER_"`
}

type ServerConfig struct {
	Mode   string `env:"MODE" envDefault:"dev"`
	Scheme string `env:"SCHEME" envDefault:"http"`
	Domain string `env:"DOMAIN" envDefault:"localhost"`
	Port   int    `env:"PORT" envDefault:"8080"`
}

type JWTConfig struct {
	Secret string `env:"SECRET,required"`
	Issuer string `env:"ISSUER" envDefault:"glasslink"`
}

type AuthConfig struct {
	JWT JWTConfig `envPrefix:"JWT_"`

	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"24h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`

	MaxLoginAttempts int           `env:"MAX_LOGIN_ATTEMPTS" envDefault:"5"`
	LockDuration     time.Duration `env:"LOCK_DURATION" envDefault:"30m"`

	OtpExpiry     time.Duration `env:"OTP_EXPIRY" envDefault:"5m"`
	OtpRateLimit  time.Duration `env:"OTP_RATE_LIMIT" envDefault:"60s"`
	OtpInResponse bool          `env:"OTP_IN_RESPONSE" envDefault:"false"`

	HeartbeatTTL time.Duration `env:"HEARTBEAT_TTL" envDefault:"60s"`
}

type DBConfig struct {
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	Database string `env:"DATABASE" envDefault:"glasslink"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

type EmailConfig struct {
	Server string `env:"SERVER" envDefault:"localhost"`
	Port   int    `env:"PORT" envDefault:"587"`
	User   string `env:"USER" envDefault:""`
	Pass   string `env:"PASS" envDefault:""`

	// SmsGatewayDomain is the carrier email-to-SMS gateway domain, messages
	// are addressed to <phone>@<domain>.
	SmsGatewayDomain string `env:"SMS_GATEWAY_DOMAIN" envDefault:"sms.gateway.local"`
}

type NotifyConfig struct {
	// Mode selects the Notifier transport: "console" or "smtp".
	Mode string `env:"MODE" envDefault:"console"`
}

type JaegerSamplerConfig struct {
	Type  string `env:"TYPE" envDefault:"const"`
	Param int    `env:"PARAM" envDefault:"1"`
}

type JaegerReporterConfig struct {
	LogSpans           bool   `env:"LOG_SPANS" envDefault:"false"`
	LocalAgentHostPort string `env:"AGENT" envDefault:"localhost:6831"`
}

type JaegerConfig struct {
	Sampler  JaegerSamplerConfig  `envPrefix:"SAMPLER_"`
	Reporter JaegerReporterConfig `envPrefix:"REPORTER_"`
}

// MustLoad reads configuration from the environment, looking for a local
// .env file first. Fatals on malformed or missing required values.
func MustLoad() Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file found", zap.Error(err))
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse config", zap.Error(err))
	}

	return conf
}
