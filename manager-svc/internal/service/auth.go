package service

import (
	"errors"
	"fmt"
	"time"

	"foodcart/manager-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotStaff           = errors.New("user is not a staff member")
	ErrInvalidToken       = errors.New("invalid token")
)

type Claims struct {
	UserID   int    `json:"uid"`
	Username string `json:"username"`
	Staff    bool   `json:"staff"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  StaffRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users StaffRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Login returns ErrNotStaff only after the password matched.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.users.StaffUserByUsername(username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.IsStaff {
		return "", ErrNotStaff
	}

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Staff:    true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SeedAdmin creates a staff account unless one with that name exists.
// It reports whether a user was created.
func (s *AuthService) SeedAdmin(username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	_, err := s.users.StaffUserByUsername(username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.StaffUser{Username: username, PasswordHash: string(hashed), IsStaff: true}
	if err := s.users.CreateStaffUser(user); err != nil {
		return false, err
	}
	return true, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
