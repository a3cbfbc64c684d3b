package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	issuer = "stakeledger"
)

type JWTServiceInterface interface {
	GenerateJWT(accountID int64, role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	AccountID int64  `json:"account_id"`
	Role      string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

// GenerateJWT is used by tooling and tests; production tokens come from the session service.
func (s *JWTService) GenerateJWT(accountID int64, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		AccountID: accountID,
		Role:      role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AccountID == 0 || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}
	if claims.Role == "" {
		claims.Role = RoleUser
	}

	return claims, nil
}
