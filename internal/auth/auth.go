// Package auth provides password hashing and JWT session tokens.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/upkeephq/upkeep/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidToken indicates a malformed or unverifiable token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken indicates the token's lifetime has passed.
	ErrExpiredToken = errors.New("token expired")
	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Claims carries the authenticated identity extracted from a token.
type Claims struct {
	UserID   string
	Username string
	Role     user.Role
}

// HasPermission reports whether the claims' role allows an action.
func (c *Claims) HasPermission(action string) bool {
	u := user.User{Role: c.Role}
	return u.HasPermission(action)
}

// Service signs and validates session tokens and hashes passwords.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an auth service with the given signing secret and token
// lifetime.
func NewService(secret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), tokenTTL: tokenTTL}
}

// HashPassword hashes a password using bcrypt.
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword reports whether a password matches a hash.
func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken signs a session token for a user.
func (s *Service) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"role":     string(u.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies a token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := mapClaims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, ok := mapClaims["username"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:   userID,
		Username: username,
		Role:     user.Role(role),
	}, nil
}

// ValidatePassword enforces minimum password strength.
func (s *Service) ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

// ValidateUsername enforces username format.
func (s *Service) ValidateUsername(username string) error {
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters long")
	}
	if len(username) > 50 {
		return errors.New("username must be less than 50 characters")
	}
	return nil
}

// ValidateEmail enforces a minimal email shape.
func (s *Service) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return errors.New("invalid email format")
	}
	return nil
}
