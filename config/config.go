package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv carga .env si existe; si no, quedan las variables del
// entorno.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no se pudo cargar .env, se usan las variables de entorno: %v", err)
	}
}

// GetEnv lee una variable de entorno.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault lee una variable con valor por defecto.
func GetEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
