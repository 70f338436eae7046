package services

import (
	"errors"
	"fmt"
	"time"

	"seabasket/internal/models"
	"seabasket/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is the identity embedded in a bearer token.
type Claims struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (c Claims) IsAdmin() bool { return c.Role == models.RoleAdmin }

// AuthService handles registration, login, and token validation.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. Tokens expire 60 minutes after
// issue.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  60 * time.Minute,
	}
}

// Register stores a new user with a bcrypt password hash. The plaintext
// password is never persisted. Fails with a conflict when the email is
// already registered.
func (s *AuthService) Register(name, email, password, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleCustomer
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, E(KindConflict, "email_in_use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
		Status:   true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login authenticates by email or phone number and returns a signed token.
// The same unauthorized error covers unknown identifiers and wrong
// passwords so callers cannot probe for accounts.
func (s *AuthService) Login(identifier, password string) (string, error) {
	user, err := s.userRepo.GetByEmailOrPhone(identifier)
	if err != nil {
		return "", E(KindUnauthorized, "invalid_credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", E(KindUnauthorized, "invalid_credentials")
	}
	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature and expiry and returns the embedded
// identity.
func (s *AuthService) ValidateToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, E(KindUnauthorized, "invalid_or_expired_token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, E(KindUnauthorized, "invalid_or_expired_token")
	}

	id, ok := mapClaims["id"].(float64)
	if !ok {
		return Claims{}, E(KindUnauthorized, "invalid_or_expired_token")
	}
	name, _ := mapClaims["name"].(string)
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return Claims{UserID: uint(id), Name: name, Email: email, Role: role}, nil
}
