package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"desdeaca/config"
	"desdeaca/jobs"
	"desdeaca/routes"
)

func main() {
	app, err := config.InitApp()
	if err != nil {
		log.Fatalf("No se pudo inicializar la aplicación: %v", err)
	}
	defer app.Close()

	if err := jobs.InitCronJobs(app.Cron, app.Redis); err != nil {
		log.Fatalf("No se pudieron iniciar las tareas programadas: %v", err)
	}

	config.InitWebSocket(app.Router, app.Melody)

	routes.SetupRoutes(app.Router, app.DB, app.Redis, app.Cloudinary, app.Melody)

	app.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: app.Router,
	}

	go func() {
		log.Println("Servidor escuchando en el puerto " + port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("El servidor no pudo arrancar: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Apagando el servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Apagado forzado: %v", err)
	}
}
