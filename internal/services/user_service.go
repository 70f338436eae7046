package services

import (
	"errors"
	"fmt"
	"time"

	"seabasket/internal/models"
	"seabasket/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// resetTokenTTL is how long a password reset token stays valid.
const resetTokenTTL = time.Hour

// UserService handles profile and password management.
type UserService struct {
	userRepo  repositories.UserRepository
	resetRepo repositories.PasswordResetRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, resetRepo repositories.PasswordResetRepository) *UserService {
	return &UserService{userRepo: userRepo, resetRepo: resetRepo}
}

// Profile returns the user's account record.
func (s *UserService) Profile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(KindNotFound, "user_not_found")
		}
		return nil, err
	}
	return user, nil
}

// ProfileUpdate carries the optional fields of a profile update.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	ProfilePic  *string
	Status      *bool // admin only; ignored for self-service updates
}

// UpdateProfile applies non-nil fields to the user's account. A phone
// number already held by another user is a conflict.
func (s *UserService) UpdateProfile(userID uint, req ProfileUpdate, allowStatus bool) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		existing, err := s.userRepo.GetByPhone(*req.PhoneNumber)
		if err == nil && existing.ID != userID {
			return nil, E(KindConflict, "phone_taken")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.ProfilePic != nil {
		user.ProfilePic = *req.ProfilePic
	}
	if allowStatus && req.Status != nil {
		user.Status = *req.Status
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the user's password after verifying the old one.
func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.Profile(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return E(KindValidation, "old_password_incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// ForgotPassword issues a persisted reset token for the account, valid for
// one hour. Mail delivery is an external collaborator; the token is
// returned so the caller can hand it off.
func (s *UserService) ForgotPassword(email string) (string, error) {
	if _, err := s.userRepo.GetByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", E(KindNotFound, "user_not_found")
		}
		return "", err
	}

	token := uuid.New().String()
	reset := &models.PasswordReset{
		Token:     token,
		Email:     email,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(reset); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// ResetPassword consumes a reset token and sets a new password.
func (s *UserService) ResetPassword(token, newPassword string) error {
	reset, err := s.resetRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return E(KindValidation, "invalid_reset_token")
		}
		return err
	}
	if time.Now().After(reset.ExpiresAt) {
		return E(KindValidation, "invalid_reset_token")
	}

	user, err := s.userRepo.GetByEmail(reset.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return E(KindNotFound, "user_not_found")
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	if err := s.resetRepo.DeleteByToken(token); err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	return nil
}

// Users returns one page of accounts, newest first, for admin listings.
func (s *UserService) Users(page, pageSize int) ([]models.User, error) {
	return s.userRepo.List(page, pageSize)
}

// User returns a single account by ID, for admin listings.
func (s *UserService) User(id uint) (*models.User, error) {
	return s.Profile(id)
}
