package models

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

const (
	// VerificationCodeLength digits are mailed to the user at signup.
	VerificationCodeLength = 6
	// VerificationTTL is how long a mailed code stays valid.
	VerificationTTL = 60 * time.Minute
)

// UserVerification holds the pending email-verification code for a user,
// one-to-one with User.
type UserVerification struct {
	gorm.Model

	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code      string    `gorm:"type:text" json:"-"`
	ExpiredAt time.Time `json:"expired_at"`
}

// Refresh assigns a new random code and pushes the expiry forward.
func (v *UserVerification) Refresh(now time.Time) {
	min := 1
	for i := 1; i < VerificationCodeLength; i++ {
		min *= 10
	}
	v.Code = fmt.Sprintf("%0*d", VerificationCodeLength, min+rand.Intn(9*min))
	v.ExpiredAt = now.Add(VerificationTTL)
}

// IsExpired reports whether the code is past its expiry at the given moment.
func (v *UserVerification) IsExpired(now time.Time) bool {
	return now.After(v.ExpiredAt)
}
