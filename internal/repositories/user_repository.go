package repositories

import "seabasket/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailOrPhone(identifier string) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
	Update(user *models.User) error
	List(page, pageSize int) ([]models.User, error)
}

// PasswordResetRepository defines the interface for persisted reset tokens.
type PasswordResetRepository interface {
	Create(reset *models.PasswordReset) error
	GetByToken(token string) (*models.PasswordReset, error)
	DeleteByToken(token string) error
}
