package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"matchmeet/backend/internal/models"
	"matchmeet/backend/internal/storage"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

type signupRequest struct {
	Username    string   `json:"username" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	DateOfBirth string   `json:"date_of_birth" binding:"required"`
	Bio         string   `json:"bio"`
	Interests   []string `json:"interests"`
}

// Signup creates the account with its profile and mails a verification
// code. The account stays unverified until the code is confirmed.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}

	user := &models.User{Username: req.Username, Email: req.Email, DateOfBirth: dob}
	if err := user.SetPassword(req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	verification, err := h.Storage.CreateUserWithProfile(user, req.Bio, req.Interests)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "could not create account"})
		return
	}

	if err := h.Mailer.SendVerificationEmail(user.Email, user.Username, verification.Code); err != nil {
		// Account exists; the user can ask for a resend.
		log.Printf("ERROR: failed to mail verification code to %s: %v", user.Email, err)
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": user.ID})
}

type verifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Storage.VerifyUser(req.Email, req.Code, time.Now())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"verified": true})
	case errors.Is(err, storage.ErrVerificationExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "verification code expired"})
	case errors.Is(err, storage.ErrVerificationMismatch), errors.Is(err, storage.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification code"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
	}
}

type resendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) ResendVerification(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil || user.Verified {
		// Do not reveal whether the address exists.
		c.JSON(http.StatusOK, gin.H{"sent": true})
		return
	}

	verification, err := h.Storage.RefreshVerification(user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not refresh code"})
		return
	}
	if err := h.Mailer.SendVerificationEmail(user.Email, user.Username, verification.Code); err != nil {
		log.Printf("ERROR: failed to mail verification code to %s: %v", user.Email, err)
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !user.Verified {
		c.JSON(http.StatusForbidden, gin.H{"error": "email not verified"})
		return
	}

	token, err := h.generateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": user.ID})
}

func (h *Handler) generateJWT(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": float64(userID),
		"exp":     time.Now().Add(h.Config.JWTTTL).Unix(),
		"iss":     "matchmeet-service",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Config.JWTSecret))
}

// parseJWT validates the token and extracts the user id claim.
func (h *Handler) parseJWT(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.Config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, errors.New("missing user_id claim")
	}
	return uint(id), nil
}
