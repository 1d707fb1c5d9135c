package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims поля access token сервиса аутентификации
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier проверяет HS256 access token секретом проекта
type TokenVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewTokenVerifier создаёт верификатор; now можно подменить в тестах
func NewTokenVerifier(secret string, now func() time.Time) *TokenVerifier {
	if now == nil {
		now = time.Now
	}
	return &TokenVerifier{secret: []byte(secret), now: now}
}

// Verify разбирает токен и возвращает пользователя и время истечения
func (v *TokenVerifier) Verify(tokenString string) (*model.AuthUser, time.Time, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, time.Time{}, ErrTokenExpired
		}
		return nil, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, time.Time{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: subject is not a uuid", ErrInvalidToken)
	}

	user := &model.AuthUser{ID: userID}
	if claims.Email != "" {
		email := claims.Email
		user.Email = &email
	}

	return user, claims.ExpiresAt.Time, nil
}
