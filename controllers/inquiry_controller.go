package controllers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"desdeaca/dto"
	"desdeaca/errors"
	"desdeaca/response"
	"desdeaca/services"
)

type InquiryController struct {
	svc *services.InquiryService
}

func NewInquiryController(svc *services.InquiryService) *InquiryController {
	return &InquiryController{svc: svc}
}

// SendWhatsApp atiende POST /api/whatsapp/send y devuelve el link
// wa.me listo para abrir.
func (ic *InquiryController) SendWhatsApp(c *gin.Context) {
	var req dto.WhatsAppSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "property_id es requerido")
		return
	}

	result, err := ic.svc.SendWhatsApp(c.Request.Context(), &req)
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrPropertyNotFound):
			response.NotFound(c, "Propiedad no encontrada o no disponible")
		default:
			if appErr := errors.GetAppError(err); appErr != nil {
				response.BadRequest(c, appErr.Message)
				return
			}
			response.ServerError(c, err)
		}
		return
	}

	response.Success(c, result)
}

// CreateReservation atiende POST /api/reservations (superficie legacy
// del frontend).
func (ic *InquiryController) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos de reserva inválidos")
		return
	}

	id, err := ic.svc.CreateReservation(c.Request.Context(), &req)
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrPropertyNotFound):
			response.NotFound(c, "Propiedad no encontrada")
		default:
			if appErr := errors.GetAppError(err); appErr != nil {
				response.BadRequest(c, appErr.Message)
				return
			}
			response.ServerError(c, err)
		}
		return
	}

	response.Created(c, gin.H{"id": id}, "Consulta registrada")
}

// ListReservations atiende GET /api/reservations. Solo admins.
func (ic *InquiryController) ListReservations(c *gin.Context) {
	items, err := ic.svc.ListReservations(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, items)
}
