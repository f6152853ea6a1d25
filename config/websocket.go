package config

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// InitWebSocket expone /ws para que los paneles de administración
// reciban avisos de consultas nuevas en tiempo real.
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			log.Println("Error en handshake de websocket:", err)
		}
	})

	m.HandleConnect(func(s *melody.Session) {
		log.Println("Cliente websocket conectado:", s.Request.RemoteAddr)
	})
}
