package response

import (
	"math"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"desdeaca/utils"
)

// Response define la estructura uniforme de respuesta.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination define el sobre de paginación.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination arma el sobre a partir de page/limit/total.
// totalPages = ceil(total/limit); con total 0 queda en 0 páginas.
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// Success respuesta exitosa
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// SuccessMessage respuesta exitosa con mensaje
func SuccessMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

// Created respuesta de creación (201)
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data, Message: message})
}

// SuccessWithPagination respuesta exitosa con sobre de paginación
func SuccessWithPagination(c *gin.Context, data interface{}, p *Pagination) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Pagination: p})
}

// BadRequest respuesta de entrada inválida (400)
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: message})
}

// ValidationErrors respuesta 400 con la lista completa de problemas
func ValidationErrors(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Datos inválidos",
		Errors:  errs,
	})
}

// Unauthorized respuesta sin credenciales (401)
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "No autenticado"
	}
	c.JSON(http.StatusUnauthorized, Response{Success: false, Message: message})
}

// Forbidden respuesta sin permiso (403)
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{Success: false, Message: "No tenés permiso para esta acción"})
}

// NotFound respuesta no encontrado (404)
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "No encontrado"
	}
	c.JSON(http.StatusNotFound, Response{Success: false, Message: message})
}

// Conflict respuesta de conflicto por clave duplicada (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{Success: false, Message: message})
}

// ServerError respuesta de error interno (500). El detalle solo
// se expone con ENV=dev; al archivo de log va siempre.
func ServerError(c *gin.Context, err error) {
	resp := Response{Success: false, Message: "Error interno del servidor"}
	if err != nil {
		utils.LogError("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		if os.Getenv("ENV") == "dev" {
			resp.Error = err.Error()
		}
	}
	c.JSON(http.StatusInternalServerError, resp)
}
