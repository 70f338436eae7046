package repositories

import (
	"fmt"

	"seabasket/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetByEmailOrPhone retrieves a user whose email or phone number matches
// the login identifier.
func (r *GORMUserRepository) GetByEmailOrPhone(identifier string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ? OR phone_number = ?", identifier, identifier).Error; err != nil {
		return nil, fmt.Errorf("user %s: %w", identifier, err)
	}
	return &user, nil
}

// GetByPhone retrieves a user by their phone number.
func (r *GORMUserRepository) GetByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "phone_number = ?", phone).Error; err != nil {
		return nil, fmt.Errorf("user with phone %s: %w", phone, err)
	}
	return &user, nil
}

// Update persists all fields of an existing user.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user)
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", user.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// List returns one page of users, newest first.
func (r *GORMUserRepository) List(page, pageSize int) ([]models.User, error) {
	var users []models.User
	offset := (page - 1) * pageSize
	if err := r.db.Order("id DESC").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GORMPasswordResetRepository is a GORM implementation of PasswordResetRepository.
type GORMPasswordResetRepository struct {
	db *gorm.DB
}

// NewGORMPasswordResetRepository creates a new instance of GORMPasswordResetRepository.
func NewGORMPasswordResetRepository(db *gorm.DB) *GORMPasswordResetRepository {
	return &GORMPasswordResetRepository{db: db}
}

// Create stores a reset token row.
func (r *GORMPasswordResetRepository) Create(reset *models.PasswordReset) error {
	if err := r.db.Create(reset).Error; err != nil {
		return fmt.Errorf("failed to create password reset: %w", err)
	}
	return nil
}

// GetByToken looks up a reset token row.
func (r *GORMPasswordResetRepository) GetByToken(token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := r.db.First(&reset, "token = ?", token).Error; err != nil {
		return nil, fmt.Errorf("password reset: %w", err)
	}
	return &reset, nil
}

// DeleteByToken removes a consumed or invalidated token.
func (r *GORMPasswordResetRepository) DeleteByToken(token string) error {
	if err := r.db.Delete(&models.PasswordReset{}, "token = ?", token).Error; err != nil {
		return fmt.Errorf("failed to delete password reset: %w", err)
	}
	return nil
}
