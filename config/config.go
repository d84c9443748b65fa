package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string

	KafkaBroker  string
	OrdersTopic  string
	KafkaGroupID string

	GeocoderURL     string
	GeocoderAPIKey  string
	GeocoderTimeout time.Duration
	CoordinateCache string

	JWTSecret string
	JWTTTL    time.Duration

	AdminUser     string
	AdminPassword string

	PublicBaseURL string
	OrderSvcURL   string
	ManagerSvcURL string

	LogLevel string
}

// Load reads the process environment. A .env file in the working directory,
// if present, is loaded first and never overrides variables already set.
func Load(defaultAddr string) *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("failed to load .env: %v", err)
	}

	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", defaultAddr),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "foodcart"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),

		KafkaBroker:  getEnv("KAFKA_BROKER", "localhost:9092"),
		OrdersTopic:  getEnv("ORDERS_TOPIC", "foodcart-events"),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "manager-svc"),

		GeocoderURL:     getEnv("GEOCODER_URL", "https://geocode-maps.yandex.ru/1.x"),
		GeocoderAPIKey:  os.Getenv("GEOCODER_API_KEY"),
		GeocoderTimeout: getDuration("GEOCODER_TIMEOUT", 5*time.Second),
		CoordinateCache: strings.ToLower(getEnv("COORDINATE_CACHE", "redis")),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getDuration("JWT_TTL", 12*time.Hour),

		AdminUser:     os.Getenv("MANAGER_ADMIN_USER"),
		AdminPassword: os.Getenv("MANAGER_ADMIN_PASSWORD"),

		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		OrderSvcURL:   getEnv("ORDER_SVC_URL", "http://localhost:8081"),
		ManagerSvcURL: getEnv("MANAGER_SVC_URL", "http://localhost:8082"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func MustInitPostgres(dsn string) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.Ping(); err != nil {
		logrus.Fatalf("Failed to ping database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
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
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultVal string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logrus.Warnf("invalid duration %s=%q, using %s", key, raw, defaultVal)
		return defaultVal
	}
	return d
}
