package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"

	"desdeaca/dto"
	"desdeaca/errors"
	"desdeaca/models"
	"desdeaca/validator"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const bcryptCost = 12

// Hash válido contra el que comparar cuando el usuario no existe,
// para que el login falle en tiempo constante y no revele si el email
// está registrado.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register da de alta un usuario con la contraseña hasheada.
func (s *AuthService) Register(input dto.RegisterInput) (*models.User, error) {
	if err := validator.ValidateRegister(&input); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, errors.ErrUserAlreadyExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	userType := input.UserType
	if userType == "" {
		userType = models.UserTypeGuest
	}

	user := models.User{
		Email:          email,
		PasswordHash:   string(hash),
		Name:           strings.TrimSpace(input.Name),
		Phone:          input.Phone,
		WhatsappNumber: input.WhatsappNumber,
		UserType:       userType,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate busca el usuario y compara la contraseña. Devuelve un
// único error genérico sin distinguir "no existe" de "contraseña
// incorrecta"; cuando el usuario no existe igual se corre una
// comparación bcrypt completa.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetByID devuelve el usuario o ErrUserNotFound.
func (s *AuthService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyGoogleIDToken valida el tokenId contra Google.
func VerifyGoogleIDToken(ctx context.Context, tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(ctx, tokenID, clientID)
}

// FindOrCreateGoogleUser busca la cuenta por email y si no existe la
// crea como guest verificado con una contraseña aleatoria.
func (s *AuthService) FindOrCreateGoogleUser(gu dto.GoogleUser) (*models.User, error) {
	email := strings.ToLower(gu.Email)

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(raw)), bcryptCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         gu.Name,
		UserType:     models.UserTypeGuest,
		Verified:     gu.VerifiedEmail,
		Avatar:       gu.Picture,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
