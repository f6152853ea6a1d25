package config

import (
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"desdeaca/validator"
)

// App agrupa los recursos compartidos de la aplicación. Se arma una
// sola vez en el arranque y se inyecta en rutas y servicios.
type App struct {
	Router     *gin.Engine
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
	Melody     *melody.Melody
	Cron       *cron.Cron
}

// InitApp conecta base de datos, Redis y Cloudinary, y configura el
// router con CORS según ALLOWED_ORIGINS.
func InitApp() (*App, error) {
	LoadEnv()

	db, err := ConnectDB()
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	rdb, err := ConnectRedis()
	if err != nil {
		return nil, err
	}

	cld, err := ConnectCloudinary()
	if err != nil {
		return nil, err
	}

	validator.RegisterCustomValidations()

	router := gin.Default()
	router.Use(cors.New(corsConfig()))

	m := melody.New()
	m.Config.MaxMessageSize = 2048

	return &App{
		Router:     router,
		DB:         db,
		Redis:      rdb,
		Cloudinary: cld,
		Melody:     m,
		Cron:       cron.New(),
	}, nil
}

// corsConfig arma la política CORS. Con ALLOWED_ORIGINS vacío se
// permite cualquier origen (modo desarrollo).
func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}

	raw := GetEnv("ALLOWED_ORIGINS")
	if raw == "" {
		cfg.AllowOriginFunc = func(origin string) bool { return true }
		return cfg
	}

	allowed := map[string]bool{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}
	cfg.AllowOriginFunc = func(origin string) bool { return allowed[origin] }
	return cfg
}

// Close libera los recursos en orden inverso al arranque.
func (a *App) Close() {
	if a.Cron != nil {
		a.Cron.Stop()
	}
	if a.Melody != nil {
		if err := a.Melody.Close(); err != nil {
			log.Println("Error al cerrar websocket:", err)
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Println("Error al cerrar Redis:", err)
		}
	}
	if a.DB != nil {
		CloseDB(a.DB)
	}
}
