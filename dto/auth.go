package dto

import "time"

type RegisterInput struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	WhatsappNumber string `json:"whatsapp_number"`
	UserType       string `json:"user_type"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthInput struct {
	TokenID string `json:"tokenId" binding:"required"`
}

type GoogleUser struct {
	Name          string
	Email         string
	VerifiedEmail bool
	Picture       string
}

// UserResponse es el usuario sin hash de contraseña.
type UserResponse struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	WhatsappNumber string    `json:"whatsappNumber"`
	UserType       string    `json:"type"`
	Verified       bool      `json:"verified"`
	Avatar         string    `json:"avatar,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AuthResponse acompaña registro y login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
