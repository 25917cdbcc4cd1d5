package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Auth    AuthConfig    `yaml:"auth"`
	SMTP    SMTPConfig    `yaml:"smtp"`
	Log     LogConfig     `yaml:"log"`
	Effects EffectsConfig `yaml:"effects"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `yaml:"port"             env:"PORT"                 env-default:"3000"`
	ClientURL       string        `yaml:"client_url"       env:"CLIENT_URL"           env-default:"http://localhost:5173"`
	AllowedOrigins  string        `yaml:"allowed_origins"  env:"CORS_ALLOWED_ORIGINS" env-default:"http://frontend-service:5173, http://localhost:5173"`
	BodyLimitBytes  int           `yaml:"body_limit_bytes" env:"BODY_LIMIT_BYTES"     env-default:"5242880"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"     env-default:"10s"`
	StaticDir       string        `yaml:"static_dir"       env:"STATIC_DIR"           env-default:"./public"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"             env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database"        env:"MONGO_DB"              env-default:"talentnest"`
	Transactions   bool          `yaml:"transactions"    env:"MONGO_TRANSACTIONS"    env-default:"false"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"JWT_SECRET"  env-default:"fallback-secret-key"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"JWT_TTL"     env-default:"72h"`
	CookieName string        `yaml:"cookie_name" env:"JWT_COOKIE"  env-default:"jwt-talentnest"`
	Secure     bool          `yaml:"secure"      env:"COOKIE_SECURE" env-default:"false"`
}

// SMTPConfig holds outgoing mail settings. An empty Host disables delivery.
type SMTPConfig struct {
	Host     string `yaml:"host"     env:"SMTP_HOST"`
	Port     int    `yaml:"port"     env:"SMTP_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"SMTP_MAIL"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from"     env:"SMTP_FROM"     env-default:"no-reply@talentnest.dev"`
	FromName string `yaml:"from_name" env:"SMTP_FROM_NAME" env-default:"TalentNest"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// EffectsConfig bounds background side effects (notifications, email).
type EffectsConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"EFFECT_TIMEOUT" env-default:"30s"`
}

// SMTPEnabled reports whether outgoing mail is configured.
func (c SMTPConfig) SMTPEnabled() bool {
	return c.Host != ""
}
