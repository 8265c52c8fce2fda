package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 24 * time.Hour
)

var (
	ErrInvalidToken   = errors.New("token is invalid or expired")
	ErrWrongTokenType = errors.New("unexpected token type")
)

// Claims carries the token type alongside the registered claims so a
// refresh token can never be replayed as an access token.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}

// TokenPair is the obtain-endpoint response: a short-lived access token
// plus a longer-lived refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TokenManagerConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// TokenManager issues and validates HS256-signed tokens
type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(cfg TokenManagerConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}

	return &TokenManager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}, nil
}

// ObtainPair issues an access/refresh pair for the given user
func (m *TokenManager) ObtainPair(userID uuid.UUID) (TokenPair, error) {
	access, err := m.sign(userID, TokenTypeAccess, m.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.sign(userID, TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (m *TokenManager) Refresh(refreshToken string) (string, error) {
	claims, err := m.Parse(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != TokenTypeRefresh {
		return "", ErrWrongTokenType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return m.sign(userID, TokenTypeAccess, m.accessTTL)
}

// Verify reports whether the token is well-formed, signed by us and
// not expired, regardless of its type
func (m *TokenManager) Verify(token string) error {
	_, err := m.Parse(token)
	return err
}

// Parse validates the signature and standard claims, returning the
// decoded claims
func (m *TokenManager) Parse(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &claims, nil
}

// UserID extracts the subject of a valid access token
func (m *TokenManager) UserID(accessToken string) (uuid.UUID, error) {
	claims, err := m.Parse(accessToken)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return uuid.Nil, ErrWrongTokenType
	}
	return uuid.Parse(claims.Subject)
}

func (m *TokenManager) sign(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
