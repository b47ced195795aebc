package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// JWTServiceImpl implements domain.TokenService. The cookie token only
// references the Redis session; the upstream bearer token never leaves the
// server side.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewJWTService creates a new JWT session-token service
func NewJWTService(secretKey, issuer string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// GenerateSessionToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateSessionToken(sessionID string, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       role,
		"iss":        j.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(j.ttl).Unix(),
		"jti":        j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateSessionToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateSessionToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return &domain.TokenClaims{
		SessionID: sessionID,
		Role:      role,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
