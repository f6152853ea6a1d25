package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"desdeaca/controllers"
	"desdeaca/middleware"
	"desdeaca/models"
	"desdeaca/services"
)

// SetupRoutes arma toda la superficie HTTP de la API.
func SetupRoutes(router *gin.Engine, db *gorm.DB, rdb *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {
	propertySvc := services.NewPropertyService(services.PropertyServiceOptions{DB: db, Redis: rdb})
	inquirySvc := services.NewInquiryService(services.InquiryServiceOptions{DB: db, Melody: m})
	authSvc := services.NewAuthService(db)

	propertyCtl := controllers.NewPropertyController(propertySvc)
	inquiryCtl := controllers.NewInquiryController(inquirySvc)
	authCtl := controllers.NewAuthController(authSvc)

	api := router.Group("/api")

	api.GET("/properties", propertyCtl.List)
	api.GET("/properties/:id", propertyCtl.GetByID)
	api.POST("/properties", propertyCtl.Create)
	api.PUT("/properties/:id", propertyCtl.Update)
	api.DELETE("/properties/:id", propertyCtl.Delete)
	api.PUT("/properties/:id/approve", middleware.AuthMiddleware(models.UserTypeAdmin), propertyCtl.Approve)

	api.GET("/search", propertyCtl.Search)

	api.POST("/whatsapp/send", inquiryCtl.SendWhatsApp)
	api.POST("/reservations", inquiryCtl.CreateReservation)
	api.GET("/reservations", middleware.AuthMiddleware(models.UserTypeAdmin), inquiryCtl.ListReservations)

	api.POST("/users", authCtl.HandleUsers)
	api.GET("/users/profile", middleware.AuthMiddleware(), authCtl.Profile)
	api.POST("/auth/google", authCtl.GoogleAuth)

	api.POST("/img/upload", func(c *gin.Context) {
		if cld == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Subida de imágenes deshabilitada"})
			return
		}
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No se envió ningún archivo"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error al abrir el archivo"})
			return
		}
		defer src.Close()

		resp, err := cld.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: "desdeaca/properties"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "La subida falló"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Imagen subida",
			"url":     resp.SecureURL,
		})
	})

	api.POST("/img/multi-upload", func(c *gin.Context) {
		if cld == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Subida de imágenes deshabilitada"})
			return
		}
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No se envió ningún archivo"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No se envió ningún archivo"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error al abrir el archivo"})
				return
			}

			resp, uploadErr := cld.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: "desdeaca/properties"})
			src.Close()
			if uploadErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "La subida falló"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Imágenes subidas",
			"urls":    urls,
		})
	})

	api.GET("/health", func(c *gin.Context) {
		status := "ok"
		dbStatus := "ok"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			status = "degraded"
			dbStatus = "down"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "ok"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "down"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"database":  dbStatus,
			"redis":     redisStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
