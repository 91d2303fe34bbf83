package storage

import "errors"

var (
	// ErrInvalidMembership is returned when room creation is asked for
	// anything other than exactly two distinct users.
	ErrInvalidMembership = errors.New("room must have exactly two distinct members")

	// ErrNoOppositeUser means a two-party room has fewer than two members.
	// This is a data-integrity violation, not an expected state.
	ErrNoOppositeUser = errors.New("room has no opposite member")

	ErrUserNotFound        = errors.New("user not found")
	ErrRoomNotFound        = errors.New("chat room not found")
	ErrRecruitmentNotFound = errors.New("recruitment not found")

	ErrVerificationMismatch = errors.New("verification code does not match")
	ErrVerificationExpired  = errors.New("verification code has expired")
)
