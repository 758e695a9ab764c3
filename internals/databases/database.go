package database

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mali_scheduler_backend/internals/configs"
)

var DB *gorm.DB

// BuildDSN composes the postgres URL with a statement_timeout guard.
func BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=mali_scheduler&options=%s",
		url.QueryEscape(configs.GetEnv("DB_USER")),
		url.QueryEscape(configs.GetEnv("DB_PASSWORD")),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
		url.QueryEscape(fmt.Sprintf("-c statement_timeout=%d", configs.GetEnvInt("DB_STATEMENT_TIMEOUT_MS", 5000))),
	)
}

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  BuildDSN(),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate runs only when DB_AUTOMIGRATE is true (default).
func AutoMigrate(models ...interface{}) {
	if !configs.GetEnvBool("DB_AUTOMIGRATE", true) {
		log.Println("[DB] automigrate disabled")
		return
	}
	// gen_random_uuid() lives in pgcrypto before PG13
	if err := DB.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		log.Printf("[DB] pgcrypto extension: %v", err)
	}
	if err := DB.AutoMigrate(models...); err != nil {
		log.Fatalf("❌ automigrate failed: %v", err)
	}
	log.Printf("[DB] automigrated %d models", len(models))
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
			return
		}
		DB.Exec("SELECT 1 FROM courses LIMIT 1")
	}()
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not initialised")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
