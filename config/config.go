package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection described by the environment.
// DATABASE_URL wins; otherwise the DSN is assembled from the usual
// DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME variables.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := getenv("DB_HOST", "localhost")
		port := getenv("DB_PORT", "5432")
		user := getenv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		name := getenv("DB_NAME", "restaurant")
		sslmode := getenv("DB_SSLMODE", "disable")

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, name, sslmode)
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
