package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/RudraNarayan94/MOK/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

type Claims struct {
	Username  string `json:"username"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 access/refresh token pairs.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (m *Manager) Pair(user models.User) (models.TokenPair, error) {
	access, err := m.sign(user.ID, user.Username, typeAccess, m.accessTTL)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := m.sign(user.ID, user.Username, typeRefresh, m.refreshTTL)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *Manager) sign(userID int64, username, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseAccess verifies an access token and returns its claims.
func (m *Manager) ParseAccess(raw string) (Claims, error) {
	return m.parse(raw, typeAccess)
}

// RefreshAccess validates a refresh token and issues a fresh access
// token for the same user.
func (m *Manager) RefreshAccess(raw string) (string, error) {
	claims, err := m.parse(raw, typeRefresh)
	if err != nil {
		return "", err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	return m.sign(userID, claims.Username, typeAccess, m.accessTTL)
}

func (m *Manager) parse(raw, wantType string) (Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
