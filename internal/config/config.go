package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	// FolderPath is the root directory uploaded artifacts are written under.
	FolderPath string

	SMTPAddr     string
	SMTPUser     string
	SMTPPassword string
	SMTPSender   string

	WorkerConcurrency int
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("PORT", "5000"),

		DatabaseDSN: getenv(
			"DB_DSN",
			"postgres://localhost:5432/files_manager?sslmode=disable",
		),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		FolderPath: getenv("FOLDER_PATH", "/tmp/files_manager"),

		SMTPAddr:     os.Getenv("SMTP_ADDR"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPSender:   os.Getenv("SMTP_SENDER"),

		WorkerConcurrency: getenvInt("WORKER_CONCURRENCY", 10),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
