package jobs

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"desdeaca/config"
	"desdeaca/services"
)

// InitCronJobs registra las tareas programadas:
//   - ping de keep-alive cada 10 minutos para que el hosting gratuito
//     no duerma la instancia
//   - refresco nocturno del cache de listados
func InitCronJobs(c *cron.Cron, rdb *redis.Client) error {
	if url := config.GetEnv("KEEPALIVE_URL"); url != "" {
		if _, err := c.AddFunc("*/10 * * * *", func() {
			pingSelf(url)
		}); err != nil {
			return err
		}
	}

	if rdb != nil {
		if _, err := c.AddFunc("0 4 * * *", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := services.InvalidateListingCache(ctx, rdb); err != nil {
				log.Println("Error al refrescar el cache de listados:", err)
			}
		}); err != nil {
			return err
		}
	}

	c.Start()
	log.Println("Tareas programadas iniciadas")
	return nil
}

func pingSelf(url string) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		log.Println("Keep-alive falló:", err)
		return
	}
	defer resp.Body.Close()
	log.Println("Keep-alive:", resp.Status)
}
