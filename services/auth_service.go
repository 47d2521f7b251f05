package services

import (
	"errors"
	"time"

	"clickexpress-cms/config"
	"clickexpress-cms/models"
	"clickexpress-cms/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	Logout(refreshToken string) error
	Refresh(refreshToken string) (string, error)
	VerifyAccessToken(tokenString string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	cfg       *config.Config
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
}

func NewAuthService(cfg *config.Config, userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository) AuthService {
	return &authService{
		cfg:       cfg,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, models.ErrAccountDisabled
	}

	// Only staff accounts may use the admin API.
	if !user.IsStaff {
		return nil, models.ErrInsufficientPrivilege
	}

	accessToken, err := s.generateToken(user, tokenTypeAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(user, tokenTypeRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:   accessToken,
		Refresh: refreshToken,
		User:    user.Public(),
	}, nil
}

// Logout blacklists the refresh token's jti. A missing or expired token is
// accepted idempotently; a token that cannot be parsed at all is rejected.
func (s *authService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := s.parseToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil
		}
		return models.ErrInvalidToken
	}

	if claims.TokenType != tokenTypeRefresh {
		return models.ErrInvalidToken
	}

	return s.tokenRepo.Revoke(claims.ID, claims.ExpiresAt.Time)
}

// Refresh mints a new access token from a valid, non-revoked refresh token.
func (s *authService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil || claims.TokenType != tokenTypeRefresh {
		return "", models.ErrUnauthorized
	}

	revoked, err := s.tokenRepo.IsRevoked(claims.ID)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", models.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", models.ErrUnauthorized
	}

	return s.generateToken(user, tokenTypeAccess, s.cfg.AccessTokenTTL)
}

func (s *authService) VerifyAccessToken(tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil || claims.TokenType != tokenTypeAccess {
		return nil, models.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}

	return user, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *authService) generateToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}

func (s *authService) parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil {
		return claims, err
	}
	if !token.Valid {
		return claims, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
