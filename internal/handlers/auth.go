package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/reqctx"
	"vitalpoint/internal/services"
	"vitalpoint/internal/utils/helpers"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc       *services.AuthService
	jwtSecret string
}

func NewAuthHandler(svc *services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{svc: svc, jwtSecret: jwtSecret}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  handlers.LoginRequest  true  "Credentials"
// @Success      200  {object}  handlers.tokenPairResponse
// @Failure      401  {object}  helpers.Response
// @Router       /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	access, refresh, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

// Refresh
// @Summary      Refresh the token pair
// @Description  Send the refresh token as the Bearer token. The stored refresh token is rotated.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  handlers.tokenPairResponse
// @Failure      401  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID, role, tokenString, ok := h.refreshClaims(w, r)
	if !ok {
		return
	}

	access, refresh, err := h.svc.Refresh(r.Context(), userID, role, tokenString)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

// Logout
// @Summary      Log out
// @Description  Revokes the refresh token sent as the Bearer token.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, _, tokenString, ok := h.refreshClaims(w, r)
	if !ok {
		return
	}

	if err := h.svc.Logout(r.Context(), userID, tokenString); err != nil {
		logger.WithCtx(r.Context()).Error("failed to revoke refresh token", zap.Error(err))
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// refreshClaims validates the Bearer refresh token and extracts its claims.
// On failure it writes the 401 response itself.
func (h *AuthHandler) refreshClaims(w http.ResponseWriter, r *http.Request) (int, string, string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		helpers.Error(w, http.StatusUnauthorized, "missing refresh token")
		return 0, "", "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		logger.WithCtx(r.Context()).Warn("invalid refresh token", zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "invalid or expired refresh token")
		return 0, "", "", false
	}

	userID, ok1 := claims["user_id"].(float64)
	role, ok2 := claims["role"].(string)
	tokenType, ok3 := claims["token_type"].(string)
	if !ok1 || !ok2 || !ok3 || tokenType != "refresh" {
		helpers.Error(w, http.StatusUnauthorized, "malformed token payload")
		return 0, "", "", false
	}
	return int(userID), role, tokenString, true
}

// Profile
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.UserProfileResponse
// @Failure      401  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	profile, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, profile)
}

// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	FullName string `json:"fullName" validate:"max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin editor"`
}

// CreateUser
// @Summary      Create an editorial account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  handlers.CreateUserRequest  true  "Account data"
// @Success      201  {object}  models.User
// @Failure      400  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/users [post]
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user := &models.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	}
	if err := h.svc.CreateUser(r.Context(), user, req.Password); err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, user)
}

// Users
// @Summary      List editorial accounts
// @Tags         auth
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /api/admin/users [get]
func (h *AuthHandler) Users(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	users, total, err := h.svc.GetUsers(r.Context(), limit, offset)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"items": users,
		"total": total,
	})
}
