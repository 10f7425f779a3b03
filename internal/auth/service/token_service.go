package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/authcore-id/auth-backend/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

const purposeEmailVerification = "email_verification"

type TokenGenerator interface {
	GenerateAccessToken(userID string, role domain.Role) (string, time.Time, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	GenerateVerificationToken(userID string) (string, error)
	VerifyVerificationToken(tokenString string) (string, error)
	GetAccessTokenExpiry() time.Duration
}

type TokenService struct {
	Secret            string
	AccessTokenExpiry time.Duration
	VerifyTokenExpiry time.Duration

	clock clockwork.Clock
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id,omitempty"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

func NewTokenService(secret string, accessMinutes, verifyHours int, clock clockwork.Clock) *TokenService {
	return &TokenService{
		Secret:            secret,
		AccessTokenExpiry: time.Duration(accessMinutes) * time.Minute,
		VerifyTokenExpiry: time.Duration(verifyHours) * time.Hour,
		clock:             clock,
	}
}

func (ts *TokenService) GenerateAccessToken(userID string, role domain.Role) (string, time.Time, error) {
	now := ts.clock.Now()
	expiresAt := now.Add(ts.AccessTokenExpiry)

	claims := JWTCustomClaims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// VerifyAccessToken parses and validates an access token. Bad signature,
// malformed structure, and expiry all collapse to the same error so callers
// cannot tell which check failed.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	claims, err := ts.parse(tokenString)
	if err != nil {
		return nil, autherror.ErrInvalidAccessToken
	}

	if claims.UserID == "" || claims.Purpose != "" {
		return nil, autherror.ErrInvalidAccessToken
	}

	return claims, nil
}

// GenerateVerificationToken mints the token mailed out to confirm email
// ownership. It carries a purpose claim so it can never pass as an access
// token.
func (ts *TokenService) GenerateVerificationToken(userID string) (string, error) {
	now := ts.clock.Now()

	claims := JWTCustomClaims{
		Purpose: purposeEmailVerification,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.VerifyTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// VerifyVerificationToken returns the user ID a valid verification token was
// issued for.
func (ts *TokenService) VerifyVerificationToken(tokenString string) (string, error) {
	claims, err := ts.parse(tokenString)
	if err != nil {
		return "", autherror.ErrInvalidVerificationToken
	}

	if claims.Purpose != purposeEmailVerification || claims.Subject == "" {
		return "", autherror.ErrInvalidVerificationToken
	}

	return claims.Subject, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) parse(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	}, jwt.WithTimeFunc(ts.clock.Now))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
