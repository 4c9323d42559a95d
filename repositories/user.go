package repositories

import (
	"errors"
	"strings"

	"github.com/archidesk/apperrors"
	"github.com/archidesk/database"
	"github.com/archidesk/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for user accounts
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, apperrors.NotFound("user not found")
	}
	return user, result.Error
}

// FindByEmail retrieves a user by email, case-insensitively.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "lower(email) = ?", strings.ToLower(email))
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, apperrors.NotFound("user not found")
	}
	return user, result.Error
}

// EmailTaken reports whether a user with the given email already
// exists, case-insensitively.
func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).
		Where("lower(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new user. Email uniqueness is enforced here: a
// duplicate is rejected with a conflict before any insert happens.
func (r *UserRepository) Create(user models.User) (models.User, error) {
	taken, err := r.EmailTaken(user.Email)
	if err != nil {
		return user, err
	}
	if taken {
		return user, apperrors.Conflict("user with this email already exists")
	}

	user.Email = strings.ToLower(user.Email)
	result := database.DB.Create(&user)
	return user, result.Error
}

// Update saves changes to an existing user
func (r *UserRepository) Update(user models.User) error {
	return database.DB.Save(&user).Error
}

// FindByIDs retrieves the users matching the given IDs. Missing IDs are
// simply absent from the result; the caller decides whether that matters.
func (r *UserRepository) FindByIDs(ids []string) ([]models.User, error) {
	users := make([]models.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	result := database.DB.Where("id IN ?", ids).Find(&users)
	return users, result.Error
}

// FindByRole retrieves all users holding the given role
func (r *UserRepository) FindByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	result := database.DB.Where("role = ?", role).Order("created_at DESC").Find(&users)
	return users, result.Error
}
