package auth

import (
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type claims struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware резолвит личность вызывающего из JWT и кладёт её в контекст.
// Токен берётся из куки "token" либо из заголовка Authorization: Bearer.
// Без валидного токена запрос не доходит до обработчика.
func Middleware(log handlerLogger, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractToken(r)
			if err != nil {
				unauthorized(w)
				return
			}

			actor, err := parseActor(tokenStr, secret)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("rejected request with invalid token")
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func extractToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("missing token")
	}
	return strings.TrimSpace(parts[1]), nil
}

func parseActor(tokenStr, secret string) (entities.Actor, error) {
	if secret == "" {
		return entities.Actor{}, errors.New("jwt secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return entities.Actor{}, err
	}

	tokenClaims, _ := token.Claims.(*claims)
	if tokenClaims == nil || tokenClaims.ID == 0 || tokenClaims.Role == "" {
		return entities.Actor{}, errors.New("invalid claims")
	}

	return entities.Actor{
		ID:   tokenClaims.ID,
		Role: entities.ActorRole(tokenClaims.Role),
	}, nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}
