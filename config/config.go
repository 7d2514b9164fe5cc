package config

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultAgentURL = "http://127.0.0.1:8000"

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSL      bool
}

// ConnString builds a lib/pq keyword/value DSN. DB_SSL=true requests TLS
// without certificate verification.
func (c DBConfig) ConnString() string {
	sslMode := "disable"
	if c.SSL {
		sslMode = "require"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

type RedisConfig struct {
	Host string
	Port string
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type GatewayConfig struct {
	Addr          string
	KitchenSvcURL string
	FrontendDir   string
}

type Config struct {
	HTTPAddr         string
	PublicBaseURL    string
	AgentURL         string
	KafkaBroker      string
	OrderEventsTopic string
	IdempotencyTTL   time.Duration
	LogLevel         string
	DB               DBConfig
	Redis            RedisConfig
	Gateway          GatewayConfig
}

// Load reads configuration from the environment.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8081")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "kitchen")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_SSL", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("KAFKA_BROKER", "localhost:9092")
	v.SetDefault("ORDER_EVENTS_TOPIC", "order-events")
	v.SetDefault("IDEMPOTENCY_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GATEWAY_ADDR", ":8080")
	v.SetDefault("KITCHEN_SVC_URL", "http://localhost:8081")
	v.SetDefault("FRONTEND_DIR", "./frontend")

	agentURL := v.GetString("STRANDS_API_URL")
	if agentURL == "" {
		agentURL = v.GetString("API_BASE_URL")
	}
	if agentURL == "" {
		agentURL = defaultAgentURL
	}

	return &Config{
		HTTPAddr:         v.GetString("HTTP_ADDR"),
		PublicBaseURL:    strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		AgentURL:         strings.TrimRight(agentURL, "/"),
		KafkaBroker:      v.GetString("KAFKA_BROKER"),
		OrderEventsTopic: v.GetString("ORDER_EVENTS_TOPIC"),
		IdempotencyTTL:   v.GetDuration("IDEMPOTENCY_TTL"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSL:      v.GetBool("DB_SSL"),
		},
		Redis: RedisConfig{
			Host: v.GetString("REDIS_HOST"),
			Port: v.GetString("REDIS_PORT"),
		},
		Gateway: GatewayConfig{
			Addr:          v.GetString("GATEWAY_ADDR"),
			KitchenSvcURL: strings.TrimRight(v.GetString("KITCHEN_SVC_URL"), "/"),
			FrontendDir:   v.GetString("FRONTEND_DIR"),
		},
	}
}

func NewLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func MustInitPostgres(cfg DBConfig, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
