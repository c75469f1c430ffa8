package config

import (
	"fmt"
	"os"
	"time"

	"github.com/RudraNarayan94/MOK/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	HTTP   HTTPConfig   `mapstructure:"http" validate:"required"`
	DB     DBConfig     `mapstructure:"db" validate:"required"`
	Redis  RedisConfig  `mapstructure:"redis" validate:"required"`
	SMTP   SMTPConfig   `mapstructure:"smtp" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth" validate:"required"`
	Worker WorkerConfig `mapstructure:"worker" validate:"required"`
	Env    string       `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	SnippetsCSV   string `mapstructure:"snippets_csv" validate:"required"`
	ResetLinkBase string `mapstructure:"reset_link_base" validate:"required,url"`
}

type HTTPConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=1"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"min=1,max=65535"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from" validate:"required,email"`
}

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	AccessTTL     time.Duration `mapstructure:"access_ttl" validate:"min=1"`
	RefreshTTL    time.Duration `mapstructure:"refresh_ttl" validate:"min=1"`
	ResetSecret   string        `mapstructure:"reset_secret" validate:"required,min=32"`
	ResetTTL      time.Duration `mapstructure:"reset_ttl" validate:"min=1"`
	VerifyEmailMX bool          `mapstructure:"verify_email_mx"`
}

type WorkerConfig struct {
	Workers   int `mapstructure:"workers" validate:"min=1,max=64"`
	QueueSize int `mapstructure:"queue_size" validate:"min=1"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	binds := map[string]string{
		"db.conn.host":      "DB_HOST",
		"db.conn.port":      "DB_PORT",
		"db.conn.user":      "DB_USER",
		"db.conn.password":  "DB_PASSWORD",
		"db.conn.name":      "DB_NAME",
		"db.conn.ssl":       "DB_SSL",
		"redis.addr":        "REDIS_ADDR",
		"redis.password":    "REDIS_PASSWORD",
		"smtp.host":         "SMTP_HOST",
		"smtp.port":         "SMTP_PORT",
		"smtp.username":     "SMTP_USERNAME",
		"smtp.password":     "SMTP_PASSWORD",
		"smtp.from":         "EMAIL_FROM",
		"auth.jwt_secret":   "JWT_SECRET",
		"auth.reset_secret": "RESET_SECRET",
	}
	for key, env := range binds {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
