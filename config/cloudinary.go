package config

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary inicializa el cliente de Cloudinary para la subida
// de imágenes de propiedades. Opcional: sin credenciales los endpoints
// de imágenes responden 503.
func ConnectCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := GetEnv("CLOUDINARY_CLOUD_NAME")
	apiKey := GetEnv("CLOUDINARY_API_KEY")
	apiSecret := GetEnv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("Credenciales de Cloudinary incompletas, subida de imágenes deshabilitada")
		return nil, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	log.Println("Cliente de Cloudinary inicializado")
	return cld, nil
}
