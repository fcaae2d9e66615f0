package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	PoolMonitor PoolMonitor `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database agrupa os parâmetros de conexão com o data warehouse e do pool
type Database struct {
	DSN             string        `mapstructure:"-"`
	Host            string        `mapstructure:"db_dw_host"`
	Port            int           `mapstructure:"db_dw_port"`
	Name            string        `mapstructure:"db_dw_name"`
	User            string        `mapstructure:"db_dw_user"`
	Password        string        `mapstructure:"db_dw_password"`
	SSLMode         string        `mapstructure:"db_dw_sslmode"`
	MaxOpenConns    int           `mapstructure:"db_dw_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_dw_max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"db_dw_conn_max_idle_time"`
	ConnMaxLifetime time.Duration `mapstructure:"db_dw_conn_max_lifetime"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type PoolMonitor struct {
	CronSchedule string `mapstructure:"pool_monitor_cron"`
	Enabled      bool   `mapstructure:"pool_monitor_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "")
	v.SetDefault("PORT", "3000")

	v.SetDefault("DB_DW_HOST", "localhost")
	v.SetDefault("DB_DW_PORT", 5432)
	v.SetDefault("DB_DW_NAME", "cine_dw")
	v.SetDefault("DB_DW_USER", "postgres")
	v.SetDefault("DB_DW_PASSWORD", "")
	v.SetDefault("DB_DW_SSLMODE", "disable")

	// Mesmos limites do pool do driver pg usado pelos dashboards
	v.SetDefault("DB_DW_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_DW_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_DW_CONN_MAX_IDLE_TIME", "10s")
	v.SetDefault("DB_DW_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("POOL_MONITOR_CRON", "*/1 * * * *") // A cada minuto
	v.SetDefault("POOL_MONITOR_ENABLED", true)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando somente variáveis de ambiente (viper não leu .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Database.Port <= 0 {
		return nil, fmt.Errorf("config: porta do banco inválida: %d", config.Database.Port)
	}

	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return nil, fmt.Errorf("config: porta do servidor inválida: %q", config.Server.Port)
	}

	config.Database.DSN = config.Database.BuildDSN()

	return config, nil
}

// BuildDSN monta a URL de conexão do lib/pq a partir dos parâmetros separados
func (d Database) BuildDSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}

	if d.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}

	return dsn.String()
}

// Addr retorna o endereço de escuta do servidor HTTP
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
