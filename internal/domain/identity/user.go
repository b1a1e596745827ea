package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bizdesk/backend/internal/domain/shared"
)

const bcryptCost = 12

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
)

// User is an operator account for the admin console.
type User struct {
	shared.BaseEntity
	Username     string
	PasswordHash string
}

// NewUser creates a user with a bcrypt-hashed password.
func NewUser(username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: hash,
	}, nil
}

// VerifyPassword reports whether the provided password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword replaces the stored hash with one derived from newPassword.
func (u *User) ChangePassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be between 3 and 64 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
