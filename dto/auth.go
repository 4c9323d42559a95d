package dto

import (
	"time"

	"github.com/archidesk/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents admin self-registration data. Architect and
// client accounts are not self-registered; they are created through the
// role-gated add endpoints.
type RegisterRequest struct {
	Name      string `json:"name" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=7"`
	Password  string `json:"password" binding:"required,min=6"`
	AdminCode string `json:"adminCode" binding:"required"`
}

// AddUserRequest represents the payload for the admin add-architect and
// architect add-client endpoints.
type AddUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=7"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateProfileRequest carries the profile fields a user may change on
// their own account. Nil fields are left untouched.
type UpdateProfileRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=3,max=50"`
	Phone          *string `json:"phone" binding:"omitempty,min=7"`
	Company        *string `json:"company"`
	Address        *string `json:"address"`
	Specialization *string `json:"specialization"`
	ProfilePic     *string `json:"profilePic"`
}

// ChangePasswordRequest carries a password change for the caller's own account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
