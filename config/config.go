package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port             string
	BackendURL       string
	BackendTimeout   time.Duration
	AllowedOrigins   []string
	KitchenTopic     string
	CacheTTL         time.Duration
	CategoryCacheTTL time.Duration
	SessionTTL       time.Duration
	ScreenIdle       time.Duration
	KitchenPort      string
	ReceiptBaseURL   string
	ChromeBin        string
	LogLevel         string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("Failed to load .env file: %v", err)
	}

	return &Config{
		Port:             getEnv("PORT", "8090"),
		BackendURL:       strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8000"), "/"),
		BackendTimeout:   getDuration("BACKEND_TIMEOUT", 0),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		KitchenTopic:     getEnv("KITCHEN_TOPIC", "kitchen-tickets"),
		CacheTTL:         getDuration("CACHE_TTL", 30*time.Second),
		CategoryCacheTTL: getDuration("CATEGORY_CACHE_TTL", time.Hour),
		SessionTTL:       getDuration("SESSION_TTL", 30*24*time.Hour),
		ScreenIdle:       getDuration("SCREEN_IDLE_TIMEOUT", 12*time.Hour),
		KitchenPort:      getEnv("KITCHEN_PORT", "8091"),
		ReceiptBaseURL:   getEnv("RECEIPT_BASE_URL", "http://localhost:3000"),
		ChromeBin:        os.Getenv("CHROME_BIN"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func NewLogger(level string) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	return &logrus.Logger{
		Out:       os.Stdout,
		Formatter: &logrus.TextFormatter{DisableLevelTruncation: true, FullTimestamp: true},
		Hooks:     make(logrus.LevelHooks),
		Level:     lvl,
	}
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		logrus.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go durations ("45s") or a bare number of seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	logrus.Warnf("Invalid duration for %s: %q, using %s", key, raw, defaultValue)
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
