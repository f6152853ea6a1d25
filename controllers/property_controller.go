package controllers

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"desdeaca/dto"
	"desdeaca/errors"
	"desdeaca/response"
	"desdeaca/services"
)

type PropertyController struct {
	svc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{svc: svc}
}

// List atiende GET /api/properties con filtros, orden estable y
// paginación.
func (pc *PropertyController) List(c *gin.Context) {
	filters, err := services.ParseSearchFilters(c.Request.URL.Query())
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Parámetros de búsqueda inválidos")
		return
	}

	items, total, err := pc.svc.List(c.Request.Context(), filters)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.SuccessWithPagination(c, items, response.NewPagination(filters.Page, filters.Limit, total))
}

// GetByID atiende GET /api/properties/:id.
func (pc *PropertyController) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	prop, err := pc.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrPropertyNotFound) {
			response.NotFound(c, "Propiedad no encontrada")
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Success(c, services.ToPropertyResponse(prop))
}

// Create atiende POST /api/properties. Los errores de validación se
// juntan y se devuelven todos de una.
func (pc *PropertyController) Create(c *gin.Context) {
	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	prop, validationErrs, err := pc.svc.Create(c.Request.Context(), &req)
	if len(validationErrs) > 0 {
		response.ValidationErrors(c, validationErrs)
		return
	}
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, services.ToPropertyResponse(prop), "Propiedad creada, pendiente de aprobación")
}

// Update atiende PUT /api/properties/:id. Solo el dueño puede editar.
func (pc *PropertyController) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	var req dto.PropertyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	prop, err := pc.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrOwnerRequired):
			response.Unauthorized(c, "owner_id requerido")
		case stderrors.Is(err, errors.ErrOwnerMismatch):
			response.Forbidden(c)
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

	response.SuccessMessage(c, services.ToPropertyResponse(prop), "Propiedad actualizada")
}

// Delete atiende DELETE /api/properties/:id.
func (pc *PropertyController) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	var req struct {
		OwnerID uint `json:"owner_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OwnerID == 0 {
		response.Unauthorized(c, "owner_id requerido")
		return
	}

	if err := pc.svc.Delete(c.Request.Context(), id, req.OwnerID); err != nil {
		switch {
		case stderrors.Is(err, errors.ErrOwnerMismatch):
			response.Forbidden(c)
		case stderrors.Is(err, errors.ErrPropertyNotFound):
			response.NotFound(c, "Propiedad no encontrada")
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.SuccessMessage(c, nil, "Propiedad eliminada")
}

// Approve atiende PUT /api/properties/:id/approve. Solo admins.
func (pc *PropertyController) Approve(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	if err := pc.svc.Approve(c.Request.Context(), id); err != nil {
		if stderrors.Is(err, errors.ErrPropertyNotFound) {
			response.NotFound(c, "Propiedad no encontrada")
			return
		}
		response.ServerError(c, err)
		return
	}

	response.SuccessMessage(c, nil, "Propiedad aprobada")
}

// Search atiende GET /api/search?q= con puntaje de relevancia.
func (pc *PropertyController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "El parámetro q es requerido")
		return
	}

	results, err := pc.svc.SmartSearch(c.Request.Context(), query)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, results)
}

func parseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
