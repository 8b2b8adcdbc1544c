package config

import (
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	HTTP_ADDR           string
	DB_DRIVER           string
	DB_PATH             string
	DB_HOST             string
	DB_PORT             string
	DB_USER             string
	DB_PASSWORD         string
	DB_NAME             string
	ES_URL              string
	ES_USER             string
	ES_PASSWORD         string
	KAFKA_ADDRESS       string
	JWT_SECRET          string
	ADMIN_PASSWORD_HASH string
	WHATSAPP_LINK       string
	LOG_LEVEL           string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:           os.Getenv("HTTP_ADDR"),
		DB_DRIVER:           os.Getenv("DB_DRIVER"),
		DB_PATH:             os.Getenv("DB_PATH"),
		DB_HOST:             os.Getenv("DB_HOST"),
		DB_PORT:             os.Getenv("DB_PORT"),
		DB_USER:             os.Getenv("DB_USER"),
		DB_PASSWORD:         os.Getenv("DB_PASSWORD"),
		DB_NAME:             os.Getenv("DB_NAME"),
		ES_URL:              os.Getenv("ES_URL"),
		ES_USER:             os.Getenv("ES_USER"),
		ES_PASSWORD:         os.Getenv("ES_PASSWORD"),
		KAFKA_ADDRESS:       os.Getenv("KAFKA_ADDRESS"),
		JWT_SECRET:          os.Getenv("JWT_SECRET"),
		ADMIN_PASSWORD_HASH: os.Getenv("ADMIN_PASSWORD_HASH"),
		WHATSAPP_LINK:       os.Getenv("WHATSAPP_LINK"),
		LOG_LEVEL:           os.Getenv("LOG_LEVEL"),
	}

	if config.HTTP_ADDR == "" {
		config.HTTP_ADDR = ":8080"
	}
	if config.WHATSAPP_LINK == "" {
		config.WHATSAPP_LINK = "https://wa.me/212600000000"
	}

	return config, nil
}

// InitDB opens the storage backend: embedded sqlite by default,
// postgres when DB_DRIVER=postgres.
func InitDB(configuration *Config) (*gorm.DB, error) {
	if configuration.DB_DRIVER == "postgres" {
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			configuration.DB_USER, configuration.DB_PASSWORD,
			configuration.DB_HOST, configuration.DB_PORT, configuration.DB_NAME,
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return db, nil
	}

	path := configuration.DB_PATH
	if path == "" {
		path = "oukrimmeals.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	return db, nil
}
