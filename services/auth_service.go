package services

import (
	"errors"
	"strings"
	"time"

	"github.com/archidesk/access"
	"github.com/archidesk/apperrors"
	"github.com/archidesk/config"
	"github.com/archidesk/dto"
	"github.com/archidesk/models"
	"github.com/archidesk/repositories"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, token verification and the
// role-gated account creation operations.
type AuthService struct {
	cfg      config.Config
	userRepo *repositories.UserRepository
	engine   *access.Engine
}

// NewAuthService creates a new auth service instance. The deployment
// secrets (JWT secret, admin registration code) come in through cfg.
func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: repositories.NewUserRepository(),
		engine:   access.NewEngine(),
	}
}

// Register creates a new admin account. Self-registration is only open
// for admins and is gated on the deployment's admin code; architect and
// client accounts are created through AddArchitect and AddClient.
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
	if req.AdminCode != s.cfg.AdminCode {
		return nil, apperrors.Validation("invalid admin code")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Phone:    req.Phone,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	created.Password = ""
	return &created, nil
}

// Login authenticates a user and returns a signed token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		// A missing account and a wrong password look identical to the caller.
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, apperrors.Unauthenticated("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthenticated("invalid email or password")
	}

	if !user.IsActive {
		return nil, apperrors.Forbidden("account is inactive")
	}

	token, expiresAt, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken issues a signed JWT bound to the user's identity
func (s *AuthService) GenerateToken(user models.User) (string, time.Time, error) {
	if s.cfg.JWTSecret == "" {
		return "", time.Time{}, apperrors.Internal(errors.New("JWT secret not configured"))
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenExpiry)

	claims := dto.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, apperrors.Internal(err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies a JWT and returns its claims. It is a pure
// check: no store access, no side effects.
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	if s.cfg.JWTSecret == "" {
		return nil, apperrors.Internal(errors.New("JWT secret not configured"))
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Unauthenticated("token has expired")
		}
		return nil, apperrors.Unauthenticated("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthenticated("invalid token")
	}

	return claims, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// UpdateProfile applies a partial profile update to the caller's own account
func (s *AuthService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Company != nil {
		user.Company = req.Company
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.Specialization != nil {
		user.Specialization = req.Specialization
	}
	if req.ProfilePic != nil {
		user.ProfilePic = req.ProfilePic
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// ChangePassword verifies the caller's current password and replaces it
func (s *AuthService) ChangePassword(userID string, req dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.Validation("new password and confirm password do not match")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return apperrors.Unauthenticated("current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal(err)
	}

	user.Password = string(hashedPassword)
	return s.userRepo.Update(user)
}

// AddArchitect creates an architect account. Admin only.
func (s *AuthService) AddArchitect(caller access.Caller, req dto.AddUserRequest) (*models.User, error) {
	if d := s.engine.Decide(caller, access.UserAddArchitect, access.NoResource()); !d.Allowed {
		return nil, d.Err()
	}
	return s.createAccount(req, models.RoleArchitect)
}

// ListArchitects returns all architect accounts. Admin only.
func (s *AuthService) ListArchitects(caller access.Caller) ([]models.User, error) {
	if d := s.engine.Decide(caller, access.UserListArchitects, access.NoResource()); !d.Allowed {
		return nil, d.Err()
	}

	architects, err := s.userRepo.FindByRole(models.RoleArchitect)
	if err != nil {
		return nil, err
	}
	for i := range architects {
		architects[i].Password = ""
	}
	return architects, nil
}

// AddClient creates a client account. Architect only (admin override applies).
func (s *AuthService) AddClient(caller access.Caller, req dto.AddUserRequest) (*models.User, error) {
	if d := s.engine.Decide(caller, access.UserAddClient, access.NoResource()); !d.Allowed {
		return nil, d.Err()
	}
	return s.createAccount(req, models.RoleClient)
}

func (s *AuthService) createAccount(req dto.AddUserRequest, role models.Role) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Phone:    req.Phone,
		Password: string(hashedPassword),
		Role:     role,
		IsActive: true,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	created.Password = ""
	return &created, nil
}
