package middleware

import (
	"net/http"
	"strings"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/reqctx"
	"vitalpoint/internal/utils/helpers"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JWTAuth validates the Bearer access token and puts the user id and role
// into the request context.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: missing access token")
				helpers.Error(w, http.StatusUnauthorized, "missing access token")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.WithCtx(r.Context()).Warn("JWTAuth: invalid or expired token", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			userID, ok1 := claims["user_id"].(float64)
			role, ok2 := claims["role"].(string)
			if !ok1 || !ok2 {
				logger.WithCtx(r.Context()).Warn("JWTAuth: malformed payload", zap.Any("claims", claims))
				helpers.Error(w, http.StatusUnauthorized, "malformed token payload")
				return
			}

			ctx := reqctx.WithUserID(r.Context(), int(userID))
			ctx = reqctx.WithRole(ctx, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
