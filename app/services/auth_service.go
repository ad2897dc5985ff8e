package services

import (
	"fmt"
	"time"

	"github.com/jullianMozo/BlogPostAPI/app/models"
	"github.com/jullianMozo/BlogPostAPI/app/repositories"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// AuthService handles user registration, login and token verification
type AuthService struct {
	userRepo repositories.UserRepository
	secret   []byte
}

// Claims are the JWT claims carried by an access token
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new AuthService signing tokens with secret
func NewAuthService(userRepo repositories.UserRepository, secret string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
	}
}

// Register creates a new non-admin user account
func (s *AuthService) Register(username, password string) (*models.User, error) {
	user := &models.User{
		Username: username,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err == repositories.ErrNotFound {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !user.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user)
}

// IssueToken signs an access token for the given user
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies a token string and returns the principal it
// was issued to
func (s *AuthService) ParseToken(tokenString string) (models.Principal, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return models.Principal{}, fmt.Errorf("invalid token: %v", err)
	}
	if !token.Valid {
		return models.Principal{}, fmt.Errorf("invalid token")
	}

	return models.Principal{
		ID:      claims.Subject,
		IsAdmin: claims.IsAdmin,
	}, nil
}
