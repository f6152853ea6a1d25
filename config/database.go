package config

import (
	"fmt"
	"time"

	"desdeaca/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB abre la conexión a Postgres con un pool acotado. Se
// devuelve el handle para inyectarlo; no hay singleton global.
func ConnectDB() (*gorm.DB, error) {
	dsn := GetEnv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=America/Argentina/San_Juan",
			GetEnvDefault("DB_HOST", "localhost"),
			GetEnvDefault("DB_USER", "postgres"),
			GetEnv("DB_PASSWORD"),
			GetEnvDefault("DB_NAME", "desdeaca"),
			GetEnvDefault("DB_PORT", "5432"),
			GetEnvDefault("DB_SSLMODE", "disable"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a la base: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate crea/actualiza el esquema y los índices que usa el listado.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Property{}, &models.Inquiry{}); err != nil {
		return fmt.Errorf("migración fallida: %w", err)
	}
	return nil
}

// CloseDB cierra el pool subyacente en el shutdown.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
