package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"desdeaca/dto"

	"github.com/redis/go-redis/v9"
)

// ListingCacheTTL es la vigencia de una página cacheada de listado.
const ListingCacheTTL = 5 * time.Minute

// GetFromRedis lee y decodifica una clave. Clave ausente no es error:
// deja target sin tocar.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(cachedData), target)
}

// SetToRedis serializa y guarda con TTL.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// DeleteFromRedis borra claves por patrón (SCAN + DEL).
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, pattern string) error {
	iter := rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// ListingCacheKey arma la clave de cache de una página de listado a
// partir del juego de filtros. Dos juegos iguales comparten clave.
func ListingCacheKey(f *dto.SearchFilters) string {
	minPrice, maxPrice, capacity := "", "", ""
	if f.MinPrice != nil {
		minPrice = fmt.Sprintf("%g", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%g", *f.MaxPrice)
	}
	if f.Capacity != nil {
		capacity = fmt.Sprintf("%d", *f.Capacity)
	}
	return fmt.Sprintf("properties:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		f.Status, f.Area, f.PropertyType, minPrice, maxPrice, capacity, f.Search, f.Page, f.Limit)
}

// InvalidateListingCache tira todas las páginas cacheadas del listado.
// Se llama ante cualquier mutación de propiedades.
func InvalidateListingCache(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return DeleteFromRedis(ctx, rdb, "properties:*")
}
