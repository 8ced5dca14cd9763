package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/saudaghar/marketplace-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error
}

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	FullName           string  `json:"full_name"`
	CNICNumber         string  `json:"cnic_number"`
	BusinessName       string  `json:"business_name"`
	BusinessType       string  `json:"business_type"`
	BusinessAddress    string  `json:"business_address"`
	Phone              string  `json:"phone"`
	NTNNumber          *string `json:"ntn_number"`
	CNICPhotoURL       *string `json:"cnic_photo_url"`
	BusinessLicenseURL *string `json:"business_license_url"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type authResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	Profile      profileResponse `json:"profile"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:              req.Email,
		Password:           req.Password,
		FullName:           req.FullName,
		CNICNumber:         req.CNICNumber,
		BusinessName:       req.BusinessName,
		BusinessType:       req.BusinessType,
		BusinessAddress:    req.BusinessAddress,
		Phone:              req.Phone,
		NTNNumber:          req.NTNNumber,
		CNICPhotoURL:       req.CNICPhotoURL,
		BusinessLicenseURL: req.BusinessLicenseURL,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.LoginWithPassword(r.Context(), auth.LoginPasswordInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /auth/logout. It revokes every refresh token of the
// caller.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChangePassword handles POST /me/password. Existing refresh tokens stop
// working; the access token in hand stays valid until it expires.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.svc.ChangePassword(r.Context(), auth.ChangePasswordInput{
		Current: req.CurrentPassword,
		New:     req.NewPassword,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(result.ExpiresIn.Seconds()),
		Profile:      toProfileResponse(result.Profile),
	}
}
