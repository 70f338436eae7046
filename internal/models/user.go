package models

import "time"

// Role gates access to privileged operations.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents an account holder.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);index"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(150)"`
	PhoneNumber string    `json:"phone_number" gorm:"uniqueIndex;type:varchar(13)"`
	Password    string    `json:"-" gorm:"type:varchar(80)"` // bcrypt hash, never serialized
	ProfilePic  string    `json:"profile_pic" gorm:"type:varchar(255)"`
	Role        string    `json:"role" gorm:"type:varchar(20);default:customer"`
	Status      bool      `json:"status" gorm:"default:true"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PasswordReset is a persisted, expiring password reset token.
// Replaces the usual in-memory token map so resets survive restarts.
type PasswordReset struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"-" gorm:"uniqueIndex;type:varchar(64)"`
	Email     string    `json:"email" gorm:"type:varchar(150);index"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
