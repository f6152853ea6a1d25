package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis abre el cliente de Redis y verifica la conexión. Redis
// es opcional: sin REDIS_ADDR el listado funciona sin cache.
func ConnectRedis() (*redis.Client, error) {
	addr := GetEnv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR vacío, el cache de listados queda deshabilitado")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: GetEnv("REDIS_USER"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Println("Conexión a Redis establecida")
	return rdb, nil
}
