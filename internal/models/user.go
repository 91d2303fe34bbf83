package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account in the matching service. Email is the login identity,
// Username is the display name shown to other users (it is not unique).
type User struct {
	gorm.Model

	Username     string    `gorm:"type:text;not null" json:"username"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	DateOfBirth  time.Time `gorm:"not null" json:"date_of_birth"`
	// Verified is set once the signup email code has been confirmed.
	Verified bool `gorm:"not null;default:false" json:"verified"`
}

// SetPassword hashes the plaintext password with bcrypt.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// Age returns full years since DateOfBirth at the given moment.
func (u *User) Age(now time.Time) int {
	age := now.Year() - u.DateOfBirth.Year()
	anniversary := u.DateOfBirth.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}
