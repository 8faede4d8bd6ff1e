package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/fittrack/backend/internal/types"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token has expired")
	ErrInvalidGatewayKey = errors.New("invalid gateway key")
)

// TokenTTL is the lifetime of issued bearer tokens.
const TokenTTL = 24 * time.Hour

// AuthService issues tokens to the chat gateway on behalf of chat users. The
// gateway proves itself with a shared key whose bcrypt hash is configured.
type AuthService struct {
	jwtSecret      string
	gatewayKeyHash []byte
}

// Ensure AuthService implements IAuthService
var _ IAuthService = (*AuthService)(nil)

func NewAuthService(jwtSecret, gatewayKeyHash string) *AuthService {
	return &AuthService{
		jwtSecret:      jwtSecret,
		gatewayKeyHash: []byte(gatewayKeyHash),
	}
}

// VerifyGatewayKey checks key against the configured bcrypt hash.
func (s *AuthService) VerifyGatewayKey(key string) error {
	if len(s.gatewayKeyHash) == 0 || key == "" {
		return ErrInvalidGatewayKey
	}
	if err := bcrypt.CompareHashAndPassword(s.gatewayKeyHash, []byte(key)); err != nil {
		return ErrInvalidGatewayKey
	}
	return nil
}

// GenerateToken signs a token for a chat user.
func (s *AuthService) GenerateToken(userID int64, username string) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a bearer token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
