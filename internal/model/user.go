package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// DefaultRoleName is the role attached to every freshly signed-up user.
const DefaultRoleName = "user"

// User represents an authenticated user in the system. Emails are stored
// lowercase; uniqueness is enforced by the database index, not by callers.
type User struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Email        string  `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password     string  `json:"-" gorm:"-"` // Plaintext input only; hashed by BeforeSave
	PasswordHash string  `json:"-" gorm:"size:255;not null"`
	DisplayName  string  `json:"display_name" gorm:"size:255"`
	FirstName    string  `json:"first_name" gorm:"size:255"`
	LastName     string  `json:"last_name" gorm:"size:255"`
	ResetToken   *string `json:"-" gorm:"column:password_reset_token;size:64;uniqueIndex"`

	Roles []Role `json:"roles,omitempty" gorm:"many2many:user_roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave hashes the plaintext password, if one was supplied, so the
// original value never reaches the database.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" {
		return nil
	}
	hash, err := HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Password = ""
	return nil
}

// ComparePassword reports whether plain matches the stored hash.
func (u *User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// RoleNames flattens the loaded role associations to their names.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

// HashPassword bcrypt-hashes a plaintext password.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
