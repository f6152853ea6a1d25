package controllers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"desdeaca/dto"
	"desdeaca/errors"
	"desdeaca/models"
	"desdeaca/response"
	"desdeaca/services"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// HandleUsers atiende POST /api/users?action=register|login. El
// frontend original multiplexa las dos operaciones en un endpoint.
func (ac *AuthController) HandleUsers(c *gin.Context) {
	switch c.Query("action") {
	case "register":
		ac.register(c)
	case "login":
		ac.login(c)
	default:
		response.BadRequest(c, "Acción inválida: use register o login")
	}
}

func (ac *AuthController) register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos de registro inválidos")
		return
	}

	user, err := ac.svc.Register(input)
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrUserAlreadyExists):
			response.Conflict(c, "El email ya está registrado")
		default:
			if appErr := errors.GetAppError(err); appErr != nil {
				response.BadRequest(c, appErr.Message)
				return
			}
			response.ServerError(c, err)
		}
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, dto.AuthResponse{User: toUserResponse(user), Token: token}, "Usuario registrado")
}

func (ac *AuthController) login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email y contraseña son requeridos")
		return
	}

	user, err := ac.svc.Authenticate(input.Email, input.Password)
	if err != nil {
		// Mensaje genérico: no revelar si el email existe.
		response.Unauthorized(c, "Credenciales inválidas")
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, dto.AuthResponse{User: toUserResponse(user), Token: token})
}

// Profile atiende GET /api/users/profile con token Bearer.
func (ac *AuthController) Profile(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := ac.svc.GetByID(userID)
	if err != nil {
		response.NotFound(c, "Usuario no encontrado")
		return
	}
	response.Success(c, toUserResponse(user))
}

// GoogleAuth atiende POST /api/auth/google: verifica el id_token y
// registra o loguea según exista la cuenta.
func (ac *AuthController) GoogleAuth(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "tokenId es requerido")
		return
	}

	payload, err := services.VerifyGoogleIDToken(c.Request.Context(), input.TokenID)
	if err != nil {
		response.Unauthorized(c, "Token de Google inválido")
		return
	}

	gu := dto.GoogleUser{
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Picture:       claimString(payload.Claims, "picture"),
		VerifiedEmail: payload.Claims["email_verified"] == true,
	}

	user, err := ac.svc.FindOrCreateGoogleUser(gu)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, dto.AuthResponse{User: toUserResponse(user), Token: token})
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Phone:          u.Phone,
		WhatsappNumber: u.WhatsappNumber,
		UserType:       u.UserType,
		Verified:       u.Verified,
		Avatar:         u.Avatar,
		CreatedAt:      u.CreatedAt,
	}
}
